package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcoelho/carteira/internal/models"
)

// MetricsRepository reads the server-side portfolio metrics snapshot.
// The snapshot is written by an external metrics job; the engine only
// consumes it as priority-2/3 valuation candidates.
type MetricsRepository struct {
	pool *pgxpool.Pool
}

// NewMetricsRepository creates a new MetricsRepository.
func NewMetricsRepository(pool *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{pool: pool}
}

// GetSnapshot retrieves per-asset metrics for a portfolio, keyed by
// asset ID. Assets without a snapshot row are simply absent.
func (r *MetricsRepository) GetSnapshot(ctx context.Context, portfolioID int64) (map[int64]models.AssetMetrics, error) {
	query := `
		SELECT asset_id, market_value, average_cost, current_quote, computed_at
		FROM portfolio_metrics
		WHERE portfolio_id = $1
	`
	rows, err := r.pool.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[int64]models.AssetMetrics)
	for rows.Next() {
		var m models.AssetMetrics
		if err := rows.Scan(&m.AssetID, &m.MarketValue, &m.AverageCost, &m.CurrentQuote, &m.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan metrics row: %w", err)
		}
		snapshot[m.AssetID] = m
	}
	return snapshot, rows.Err()
}
