package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcoelho/carteira/internal/models"
)

// TransactionRepository handles database operations for the brokerage
// ledger.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// GetByPortfolio retrieves the complete transaction set for a portfolio.
// No pagination: duplicate suppression needs the entire batch to decide
// whether a consolidated row has a primary counterpart anywhere in it.
func (r *TransactionRepository) GetByPortfolio(ctx context.Context, portfolioID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, portfolio_id, asset_id, date, type, status,
		       quantity, price, amount, currency, source_doc_id, institution, created_at
		FROM transaction
		WHERE portfolio_id = $1
		ORDER BY date ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.PortfolioID, &t.AssetID, &t.Date, &t.Type, &t.Status,
			&t.Quantity, &t.Price, &t.Amount, &t.Currency, &t.SourceDocID, &t.Institution, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// InsertBatch stores imported transactions in one round trip.
func (r *TransactionRepository) InsertBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	query := `
		INSERT INTO transaction (portfolio_id, asset_id, date, type, status,
		                         quantity, price, amount, currency, source_doc_id, institution, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`

	batch := &pgx.Batch{}
	for i := range txs {
		t := &txs[i]
		batch.Queue(query, t.PortfolioID, t.AssetID, t.Date, t.Type, t.Status,
			t.Quantity, t.Price, t.Amount, t.Currency, t.SourceDocID, t.Institution)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range txs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}
	return nil
}
