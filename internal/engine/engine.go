// Package engine is the reconciliation-and-valuation core: transaction
// classification, source-duplicate suppression, quantity/cost
// aggregation, valuation fallback chains, and weight normalization.
//
// The engine is synchronous and pure over its inputs. Callers assemble a
// consistent Input snapshot first (the data-access layer may fetch its
// pieces concurrently) and re-run Reconcile whenever an input changes;
// the same snapshot always produces the same Result.
package engine

import (
	"sort"

	"github.com/jcoelho/carteira/internal/models"
)

// Input is one consistent snapshot of everything a reconciliation pass
// consumes. Transactions must be the complete set for the portfolio:
// duplicate suppression is undefined over a partial batch.
type Input struct {
	Assets       []models.Asset
	Transactions []models.Transaction

	// LiveQuotes holds freshly fetched closes keyed by asset ID. A failed
	// or missing fetch is simply an absent key.
	LiveQuotes map[int64]float64

	// Metrics is the cached server-side metrics snapshot keyed by asset ID.
	Metrics map[int64]models.AssetMetrics

	// AverageCosts holds authoritative average costs keyed by asset ID.
	AverageCosts map[int64]float64
}

// AssetPosition is the reconciled view of one asset.
type AssetPosition struct {
	Asset          models.Asset
	Quantity       float64
	InvestedAmount float64
	SourceLabels   string
	Valuation      Valuation
	Weights        WeightMetrics
}

// Result is the output of one reconciliation pass, ordered by ticker.
type Result struct {
	Positions []AssetPosition
}

// storedValue reads an asset's stale cached value, treating absent or
// non-finite snapshots as zero.
func storedValue(a *models.Asset) float64 {
	if a.CurrentValue == nil || !IsFinite(*a.CurrentValue) {
		return 0
	}
	return *a.CurrentValue
}

// Reconcile runs the full pass: suppression over the entire batch,
// aggregation, per-asset valuation resolution, then weight normalization
// against substitution-adjusted stored totals. A single asset with no
// resolvable valuation degrades to nil fields and a stored-value weight;
// it never blocks its siblings.
//
// Archived assets are not reconciled and do not contribute their stored
// values to any total.
func Reconcile(in Input) Result {
	primaries := PrimaryTradeAssets(in.Transactions)
	totals := AggregatePositions(in.Transactions, primaries)

	// Stored totals come from the stale per-asset snapshots; each asset's
	// own stored value is substituted out during weight computation.
	var storedPortfolioTotal float64
	storedClassTotals := make(map[models.AssetClass]float64)
	for i := range in.Assets {
		if in.Assets[i].Status == models.AssetStatusArchived {
			continue
		}
		v := storedValue(&in.Assets[i])
		storedPortfolioTotal += v
		storedClassTotals[in.Assets[i].AssetClass] += v
	}

	positions := make([]AssetPosition, 0, len(in.Assets))
	for i := range in.Assets {
		asset := in.Assets[i]
		if asset.Status == models.AssetStatusArchived {
			continue
		}
		t := totals[asset.ID]

		vi := ValuationInputs{
			Asset:          &asset,
			Quantity:       t.Quantity,
			InvestedAmount: t.InvestedAmount,
		}
		if q, ok := in.LiveQuotes[asset.ID]; ok {
			vi.LiveQuote = &q
		}
		if m, ok := in.Metrics[asset.ID]; ok {
			vi.Metrics = &m
		}
		if ac, ok := in.AverageCosts[asset.ID]; ok {
			vi.AverageCost = &ac
		}
		valuation := ResolveValuation(vi)

		// An unresolved value keeps the stored value in the aggregate so
		// the remaining assets' weights still sum sensibly.
		stored := storedValue(&asset)
		resolved := stored
		if valuation.CurrentValue != nil {
			resolved = *valuation.CurrentValue
		}

		positions = append(positions, AssetPosition{
			Asset:          asset,
			Quantity:       t.Quantity,
			InvestedAmount: t.InvestedAmount,
			SourceLabels:   SourceLabels(&asset, in.Transactions),
			Valuation:      valuation,
			Weights:        ComputeWeights(resolved, stored, storedPortfolioTotal, storedClassTotals[asset.AssetClass]),
		})
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Asset.Ticker < positions[j].Asset.Ticker
	})

	return Result{Positions: positions}
}
