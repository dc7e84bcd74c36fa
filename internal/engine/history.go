package engine

import (
	"sort"

	"github.com/jcoelho/carteira/internal/models"
)

// TradeHistory is the ordered execution record for one asset.
// Subscriptions move positions but are not trades, so they are excluded
// here even though the aggregator counts them.
type TradeHistory struct {
	Trades       []models.Transaction
	TradeCount   int
	BuyCount     int
	SellCount    int
	AvgBuyPrice  *float64
	AvgSellPrice *float64
}

// SummarizeHistory filters the batch down to the asset's confirmed,
// non-suppressed buys and sells, orders them by date, and derives
// quantity-weighted average execution prices per side.
func SummarizeHistory(assetID int64, txs []models.Transaction, primaries map[int64]struct{}) TradeHistory {
	var h TradeHistory

	for i := range txs {
		tx := &txs[i]
		if tx.AssetID != assetID || tx.Status != models.TransactionStatusConfirmed {
			continue
		}
		if tx.Type != models.TransactionTypeBuy && tx.Type != models.TransactionTypeSell {
			continue
		}
		if ShouldExclude(tx, primaries) {
			continue
		}
		h.Trades = append(h.Trades, *tx)
	}

	sort.SliceStable(h.Trades, func(i, j int) bool {
		return h.Trades[i].Date.Before(h.Trades[j].Date)
	})

	var buyQty, buyNotional, sellQty, sellNotional float64
	for i := range h.Trades {
		tx := &h.Trades[i]
		if tx.Type == models.TransactionTypeBuy {
			h.BuyCount++
			buyQty += tx.Quantity
			buyNotional += tx.Price * tx.Quantity
		} else {
			h.SellCount++
			sellQty += tx.Quantity
			sellNotional += tx.Price * tx.Quantity
		}
	}
	h.TradeCount = len(h.Trades)

	if avg, ok := SafeDivide(buyNotional, buyQty); ok {
		h.AvgBuyPrice = &avg
	}
	if avg, ok := SafeDivide(sellNotional, sellQty); ok {
		h.AvgSellPrice = &avg
	}

	return h
}
