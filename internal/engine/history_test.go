package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcoelho/carteira/internal/models"
)

func tradeOn(assetID int64, typ models.TransactionType, day int, qty, price float64, sourceDocID string) models.Transaction {
	tx := trade(assetID, typ, qty, price, qty*price, sourceDocID)
	tx.Date = time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	return tx
}

func TestSummarizeHistoryAverages(t *testing.T) {
	// Sells of 3 at 50 and 2 at 55: the quantity-weighted average is
	// (150 + 110) / 5 = 52, not the midpoint 52.5.
	txs := []models.Transaction{
		tradeOn(1, models.TransactionTypeBuy, 1, 5, 40, "B3-NEGOCIACAO-1"),
		tradeOn(1, models.TransactionTypeSell, 2, 3, 50, "B3-NEGOCIACAO-2"),
		tradeOn(1, models.TransactionTypeSell, 3, 2, 55, "B3-NEGOCIACAO-3"),
	}

	h := SummarizeHistory(1, txs, PrimaryTradeAssets(txs))

	assert.Equal(t, 3, h.TradeCount)
	assert.Equal(t, 1, h.BuyCount)
	assert.Equal(t, 2, h.SellCount)
	if assert.NotNil(t, h.AvgBuyPrice) {
		assert.InDelta(t, 40.0, *h.AvgBuyPrice, 1e-9)
	}
	if assert.NotNil(t, h.AvgSellPrice) {
		assert.InDelta(t, 52.0, *h.AvgSellPrice, 1e-9)
	}
}

func TestSummarizeHistoryOrdering(t *testing.T) {
	txs := []models.Transaction{
		tradeOn(1, models.TransactionTypeSell, 20, 1, 55, "B3-NEGOCIACAO-3"),
		tradeOn(1, models.TransactionTypeBuy, 5, 2, 40, "B3-NEGOCIACAO-1"),
		tradeOn(1, models.TransactionTypeBuy, 12, 1, 45, "B3-NEGOCIACAO-2"),
	}

	h := SummarizeHistory(1, txs, PrimaryTradeAssets(txs))

	if assert.Len(t, h.Trades, 3) {
		assert.Equal(t, 5, h.Trades[0].Date.Day())
		assert.Equal(t, 12, h.Trades[1].Date.Day())
		assert.Equal(t, 20, h.Trades[2].Date.Day())
	}
}

func TestSummarizeHistoryFilters(t *testing.T) {
	pending := tradeOn(1, models.TransactionTypeBuy, 2, 5, 40, "B3-NEGOCIACAO-9")
	pending.Status = models.TransactionStatusPending

	txs := []models.Transaction{
		tradeOn(1, models.TransactionTypeBuy, 1, 5, 40, "B3-NEGOCIACAO-1"),
		// Subscriptions move the position but are not trades.
		tradeOn(1, models.TransactionTypeSubscription, 2, 3, 30, "B3-NEGOCIACAO-2"),
		tradeOn(1, models.TransactionTypeOther, 3, 0, 0, "NUBANK-DIV-1"),
		pending,
		tradeOn(2, models.TransactionTypeBuy, 4, 5, 40, "B3-NEGOCIACAO-3"),
	}

	h := SummarizeHistory(1, txs, PrimaryTradeAssets(txs))

	assert.Equal(t, 1, h.TradeCount)
	assert.Equal(t, 1, h.BuyCount)
	assert.Zero(t, h.SellCount)
	assert.Nil(t, h.AvgSellPrice)
}

func TestSummarizeHistorySuppressesConsolidatedRows(t *testing.T) {
	txs := []models.Transaction{
		tradeOn(1, models.TransactionTypeBuy, 1, 10, 100, "B3-NEGOCIACAO-2026-03"),
		tradeOn(1, models.TransactionTypeBuy, 1, 10, 100, "B3-RELATORIO-2026-03"),
	}

	h := SummarizeHistory(1, txs, PrimaryTradeAssets(txs))

	assert.Equal(t, 1, h.TradeCount)
}

func TestSummarizeHistoryEmpty(t *testing.T) {
	h := SummarizeHistory(1, nil, nil)

	assert.Zero(t, h.TradeCount)
	assert.Empty(t, h.Trades)
	assert.Nil(t, h.AvgBuyPrice)
	assert.Nil(t, h.AvgSellPrice)
}
