package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcoelho/carteira/internal/models"
)

var ErrAssetNotFound = errors.New("asset not found")

// AssetRepository handles database operations for tracked assets.
type AssetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

const assetColumns = `id, portfolio_id, ticker, name, asset_class, currency, country,
	status, source, current_price, current_value, quantity, updated_at`

func scanAsset(row pgx.Row) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(
		&a.ID, &a.PortfolioID, &a.Ticker, &a.Name, &a.AssetClass, &a.Currency, &a.Country,
		&a.Status, &a.Source, &a.CurrentPrice, &a.CurrentValue, &a.Quantity, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByPortfolio retrieves the full asset list for a portfolio.
func (r *AssetRepository) GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE portfolio_id = $1
		ORDER BY ticker ASC
	`
	rows, err := r.pool.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// GetByID retrieves a single asset.
func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE id = $1
	`
	a, err := scanAsset(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return a, nil
}

// GetByTicker resolves a ticker within a portfolio. Returns nil when the
// ticker is unknown; import uses this to skip unmatched statement rows.
func (r *AssetRepository) GetByTicker(ctx context.Context, portfolioID int64, ticker string) (*models.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE portfolio_id = $1 AND ticker = $2
	`
	a, err := scanAsset(r.pool.QueryRow(ctx, query, portfolioID, ticker))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by ticker: %w", err)
	}
	return a, nil
}
