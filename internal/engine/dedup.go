package engine

import (
	"strings"

	"github.com/jcoelho/carteira/internal/models"
)

// The same economic trade frequently appears twice in the ledger: once
// from a per-trade brokerage note and once from the monthly consolidated
// statement. There is no shared trade identifier across the two sources,
// so suppression keys on the source-document markers below.
const (
	// PrimaryTradeMarker identifies a per-trade brokerage confirmation,
	// the authoritative record of an individual trade.
	PrimaryTradeMarker = "B3-NEGOCIACAO"

	// ConsolidatedReportMarker identifies a periodic statement that
	// re-lists trades already captured by primary notes.
	ConsolidatedReportMarker = "B3-RELATORIO"
)

// IsPrimaryTrade reports whether tx is a confirmed position-moving
// transaction backed by a per-trade brokerage note.
func IsPrimaryTrade(tx *models.Transaction) bool {
	if tx.Status != models.TransactionStatusConfirmed || !tx.MovesPosition() {
		return false
	}
	return strings.Contains(NormalizeProvenance(tx.SourceDocID), PrimaryTradeMarker)
}

// PrimaryTradeAssets computes, once per batch, the set of assets that
// have at least one primary trade note anywhere in the full transaction
// set. The suppression decision for a consolidated row depends on the
// existence of a primary note anywhere in the batch, not just among rows
// already seen for the same asset, so this must run over the entire set
// before any per-asset filtering.
func PrimaryTradeAssets(txs []models.Transaction) map[int64]struct{} {
	primaries := make(map[int64]struct{})
	for i := range txs {
		if IsPrimaryTrade(&txs[i]) {
			primaries[txs[i].AssetID] = struct{}{}
		}
	}
	return primaries
}

// ShouldExclude reports whether tx is a consolidated-report duplicate of
// a trade already captured by a primary note. If the asset has no
// primary note at all, its consolidated rows are kept: they are the only
// record of the position.
func ShouldExclude(tx *models.Transaction, primaries map[int64]struct{}) bool {
	if !tx.MovesPosition() {
		return false
	}
	if !strings.Contains(NormalizeProvenance(tx.SourceDocID), ConsolidatedReportMarker) {
		return false
	}
	_, hasPrimary := primaries[tx.AssetID]
	return hasPrimary
}
