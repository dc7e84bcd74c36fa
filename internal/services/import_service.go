package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jcoelho/carteira/internal/models"
	"github.com/jcoelho/carteira/internal/repository"
)

// ImportService persists parsed statement rows as ledger transactions.
// It resolves tickers against the portfolio's assets and skips unmatched
// rows with a warning; it performs no reconciliation of its own.
type ImportService struct {
	txRepo    *repository.TransactionRepository
	assetRepo *repository.AssetRepository
}

// NewImportService creates a new ImportService.
func NewImportService(txRepo *repository.TransactionRepository, assetRepo *repository.AssetRepository) *ImportService {
	return &ImportService{
		txRepo:    txRepo,
		assetRepo: assetRepo,
	}
}

// ImportStatement stores the given rows for a portfolio. Imported rows
// are marked confirmed; suppression of consolidated duplicates happens
// at read time in the engine, so double-imports are harmless for
// position math.
func (s *ImportService) ImportStatement(ctx context.Context, portfolioID int64, rows []models.StatementRow) (*models.ImportTransactionsResponse, error) {
	defer TrackTime("ImportStatement", time.Now())

	var txs []models.Transaction
	skipped := 0
	for i := range rows {
		row := &rows[i]
		asset, err := s.assetRepo.GetByTicker(ctx, portfolioID, row.Ticker)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ticker %q: %w", row.Ticker, err)
		}
		if asset == nil {
			skipped++
			log.Warnf("import: unknown ticker %q in portfolio %d", row.Ticker, portfolioID)
			Warningf(ctx, models.WarnImportRowSkipped, "unknown ticker %q; row skipped", row.Ticker)
			continue
		}
		txs = append(txs, models.Transaction{
			PortfolioID: portfolioID,
			AssetID:     asset.ID,
			Date:        row.Date,
			Type:        row.Type,
			Status:      models.TransactionStatusConfirmed,
			Quantity:    row.Quantity,
			Price:       row.Price,
			Amount:      row.Amount,
			Currency:    row.Currency,
			SourceDocID: row.SourceDocID,
			Institution: row.Institution,
		})
	}

	if err := s.txRepo.InsertBatch(ctx, txs); err != nil {
		return nil, fmt.Errorf("failed to store transactions: %w", err)
	}

	return &models.ImportTransactionsResponse{
		PortfolioID: portfolioID,
		Imported:    len(txs),
		Skipped:     skipped,
	}, nil
}
