package engine

import (
	"strings"

	"github.com/jcoelho/carteira/internal/models"
)

// PositionTotals accumulates the reconciled quantity and invested amount
// for one asset. Absent assets are treated as zero on both.
type PositionTotals struct {
	Quantity       float64
	InvestedAmount float64
}

// AggregatePositions folds the deduplicated, status-filtered transaction
// stream into per-asset accumulators.
//
// Each transaction's quantity is rounded to 2 decimals before it is
// added; invested amounts use the raw signed amount. A transaction whose
// rounded quantity is not finite still contributes its amount. Rounding
// per transaction (rather than once on the final sum) is deliberate and
// must be preserved; see DESIGN.md.
func AggregatePositions(txs []models.Transaction, primaries map[int64]struct{}) map[int64]PositionTotals {
	totals := make(map[int64]PositionTotals)

	for i := range txs {
		tx := &txs[i]
		if tx.Status != models.TransactionStatusConfirmed || !tx.MovesPosition() {
			continue
		}
		if ShouldExclude(tx, primaries) {
			continue
		}
		if !IsFinite(tx.Amount) {
			continue
		}

		sign := 1.0
		if tx.Type == models.TransactionTypeSell {
			sign = -1.0
		}

		t := totals[tx.AssetID]
		if rounded := Round2(tx.Quantity); IsFinite(rounded) {
			t.Quantity += sign * rounded
		}
		t.InvestedAmount += sign * tx.Amount
		totals[tx.AssetID] = t
	}

	return totals
}

// SourceLabels returns the display label for an asset: the set union of
// classified tags across the asset's own source field and the provenance
// fields of all its transactions, joined in classification-table order.
func SourceLabels(asset *models.Asset, txs []models.Transaction) string {
	seen := make(map[SourceTag]struct{})

	add := func(raw string) {
		if tag, ok := ClassifySource(raw); ok {
			seen[tag] = struct{}{}
		}
	}

	add(asset.Source)
	for i := range txs {
		if txs[i].AssetID != asset.ID {
			continue
		}
		add(txs[i].Institution)
		add(txs[i].SourceDocID)
	}

	if len(seen) == 0 {
		return ""
	}
	labels := make([]string, 0, len(seen))
	for _, rule := range sourceRules {
		if _, ok := seen[rule.Tag]; ok {
			labels = append(labels, string(rule.Tag))
		}
	}
	return strings.Join(labels, ", ")
}
