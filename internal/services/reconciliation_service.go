package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jcoelho/carteira/internal/cache"
	"github.com/jcoelho/carteira/internal/engine"
	"github.com/jcoelho/carteira/internal/marketdata"
	"github.com/jcoelho/carteira/internal/models"
	"github.com/jcoelho/carteira/internal/repository"
)

var ErrAssetNotFound = errors.New("asset not found")

// quoteFetchLimit bounds the per-asset fan-out against the market-data
// gateway.
const quoteFetchLimit = 8

// ReconciliationService assembles a consistent input snapshot and runs
// the reconciliation engine over it. All external fetch failures degrade
// to missing candidates plus a warning; they never fail the request.
type ReconciliationService struct {
	txRepo      *repository.TransactionRepository
	assetRepo   *repository.AssetRepository
	metricsRepo *repository.MetricsRepository
	mdClient    *marketdata.Client
	memCache    *cache.MemoryCache
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	txRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
	metricsRepo *repository.MetricsRepository,
	mdClient *marketdata.Client,
	memCache *cache.MemoryCache,
) *ReconciliationService {
	return &ReconciliationService{
		txRepo:      txRepo,
		assetRepo:   assetRepo,
		metricsRepo: metricsRepo,
		mdClient:    mdClient,
		memCache:    memCache,
	}
}

// PortfolioPositions reconciles every asset in the portfolio as of the
// given day and returns positions, valuations and weights.
func (s *ReconciliationService) PortfolioPositions(ctx context.Context, portfolioID int64, asOf time.Time) (*models.PortfolioPositionsResponse, error) {
	defer TrackTime("PortfolioPositions", time.Now())

	in, err := s.buildSnapshot(ctx, portfolioID, asOf)
	if err != nil {
		return nil, err
	}

	result := engine.Reconcile(*in)

	positions := make([]models.PositionDTO, 0, len(result.Positions))
	for i := range result.Positions {
		p := &result.Positions[i]
		positions = append(positions, toPositionDTO(p))

		if p.Valuation.CurrentValue == nil {
			Warningf(ctx, models.WarnValuationUnresolved, "no resolvable current value for %s", p.Asset.Ticker)
			continue
		}
		if p.Valuation.CurrentPrice != nil && !hasFreshQuote(in, p.Asset.ID) {
			Warningf(ctx, models.WarnStaleQuoteUsed, "price for %s derived from stale snapshot", p.Asset.Ticker)
		}
	}

	return &models.PortfolioPositionsResponse{
		PortfolioID: portfolioID,
		AsOf:        asOf.Format("2006-01-02"),
		Positions:   positions,
	}, nil
}

// buildSnapshot gathers assets, transactions and the metrics snapshot
// concurrently, then fans out per-asset quote and average-cost lookups
// with a bounded group. Only store failures are fatal; market-data
// failures degrade that asset's candidates.
func (s *ReconciliationService) buildSnapshot(ctx context.Context, portfolioID int64, asOf time.Time) (*engine.Input, error) {
	in := &engine.Input{
		LiveQuotes:   make(map[int64]float64),
		Metrics:      make(map[int64]models.AssetMetrics),
		AverageCosts: make(map[int64]float64),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		assets, err := s.assetRepo.GetByPortfolio(gctx, portfolioID)
		if err != nil {
			return fmt.Errorf("failed to load assets: %w", err)
		}
		in.Assets = assets
		return nil
	})
	g.Go(func() error {
		txs, err := s.txRepo.GetByPortfolio(gctx, portfolioID)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		in.Transactions = txs
		return nil
	})
	g.Go(func() error {
		if snapshot, ok := s.memCache.GetSnapshot(portfolioID); ok {
			in.Metrics = snapshot
			return nil
		}
		snapshot, err := s.metricsRepo.GetSnapshot(gctx, portfolioID)
		if err != nil {
			return fmt.Errorf("failed to load metrics snapshot: %w", err)
		}
		s.memCache.SetSnapshot(portfolioID, snapshot)
		in.Metrics = snapshot
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	fg, fctx := errgroup.WithContext(ctx)
	fg.SetLimit(quoteFetchLimit)
	for i := range in.Assets {
		asset := in.Assets[i]
		fg.Go(func() error {
			if closePrice, ok := s.fetchClose(fctx, portfolioID, &asset, asOf); ok {
				mu.Lock()
				in.LiveQuotes[asset.ID] = closePrice
				mu.Unlock()
			}
			if avg, ok := s.fetchAverageCost(fctx, portfolioID, &asset); ok {
				mu.Lock()
				in.AverageCosts[asset.ID] = avg
				mu.Unlock()
			}
			return nil
		})
	}
	// Fetch closures never return an error; degradation is per-field.
	_ = fg.Wait()

	return in, nil
}

// hasFreshQuote reports whether a resolved price could have come from a
// live or cached quote. When neither existed, any non-nil price was
// necessarily derived from the asset's stale snapshot fields.
func hasFreshQuote(in *engine.Input, assetID int64) bool {
	if _, ok := in.LiveQuotes[assetID]; ok {
		return true
	}
	if m, ok := in.Metrics[assetID]; ok && m.CurrentQuote != nil && engine.IsFinite(*m.CurrentQuote) {
		return true
	}
	return false
}

func (s *ReconciliationService) fetchClose(ctx context.Context, portfolioID int64, asset *models.Asset, asOf time.Time) (float64, bool) {
	if closePrice, ok := s.memCache.GetQuote(asset.ID, asOf); ok {
		return closePrice, true
	}
	closePrice, err := s.mdClient.GetClose(ctx, portfolioID, asset.Ticker, asOf)
	if err != nil {
		log.Warnf("quote fetch failed for %s: %v", asset.Ticker, err)
		Warningf(ctx, models.WarnQuoteFetchFailed, "live quote unavailable for %s", asset.Ticker)
		return 0, false
	}
	if closePrice == nil || !engine.IsFinite(*closePrice) {
		return 0, false
	}
	s.memCache.SetQuote(asset.ID, asOf, *closePrice)
	return *closePrice, true
}

func (s *ReconciliationService) fetchAverageCost(ctx context.Context, portfolioID int64, asset *models.Asset) (float64, bool) {
	avg, err := s.mdClient.GetAverageCost(ctx, portfolioID, asset.Ticker)
	if err != nil {
		log.Warnf("average cost fetch failed for %s: %v", asset.Ticker, err)
		Warningf(ctx, models.WarnAvgCostFetchFailed, "average cost unavailable for %s", asset.Ticker)
		return 0, false
	}
	if avg == nil || !engine.IsFinite(*avg) {
		return 0, false
	}
	return *avg, true
}

// AssetHistory returns the ordered trade history and per-side averages
// for one asset.
func (s *ReconciliationService) AssetHistory(ctx context.Context, portfolioID, assetID int64) (*models.TradeHistoryResponse, error) {
	defer TrackTime("AssetHistory", time.Now())

	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if asset.PortfolioID != portfolioID {
		return nil, ErrAssetNotFound
	}

	txs, err := s.txRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	primaries := engine.PrimaryTradeAssets(txs)
	history := engine.SummarizeHistory(assetID, txs, primaries)

	trades := make([]models.TradeRowDTO, 0, len(history.Trades))
	for i := range history.Trades {
		tx := &history.Trades[i]
		row := models.TradeRowDTO{
			TransactionID: tx.ID,
			Date:          models.FlexibleDate{Time: tx.Date},
			Type:          tx.Type,
			Quantity:      tx.Quantity,
			Price:         tx.Price,
			Amount:        tx.Amount,
		}
		if tag, ok := engine.ClassifySource(tx.Institution); ok {
			row.SourceTag = string(tag)
		} else if tag, ok := engine.ClassifySource(tx.SourceDocID); ok {
			row.SourceTag = string(tag)
		}
		trades = append(trades, row)
	}

	return &models.TradeHistoryResponse{
		PortfolioID:  portfolioID,
		AssetID:      assetID,
		Ticker:       asset.Ticker,
		Trades:       trades,
		TradeCount:   history.TradeCount,
		BuyCount:     history.BuyCount,
		SellCount:    history.SellCount,
		AvgBuyPrice:  history.AvgBuyPrice,
		AvgSellPrice: history.AvgSellPrice,
	}, nil
}

func toPositionDTO(p *engine.AssetPosition) models.PositionDTO {
	return models.PositionDTO{
		AssetID:         p.Asset.ID,
		Ticker:          p.Asset.Ticker,
		Name:            p.Asset.Name,
		AssetClass:      p.Asset.AssetClass,
		Currency:        p.Asset.Currency,
		SourceLabels:    p.SourceLabels,
		Quantity:        p.Quantity,
		InvestedAmount:  p.InvestedAmount,
		AverageCost:     p.Valuation.AverageCost,
		CurrentPrice:    p.Valuation.CurrentPrice,
		CurrentValue:    p.Valuation.CurrentValue,
		QuoteVsAverage:  p.Valuation.QuoteVsAverage,
		UnrealizedPnL:   p.Valuation.UnrealizedPnL,
		PositionStatus:  string(p.Valuation.Status),
		PortfolioWeight: p.Weights.PortfolioWeight,
		ClassWeight:     p.Weights.ClassWeight,
	}
}
