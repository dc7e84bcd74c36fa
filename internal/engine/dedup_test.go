package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcoelho/carteira/internal/models"
)

// trade builds a confirmed position-moving transaction for tests.
func trade(assetID int64, typ models.TransactionType, qty, price, amount float64, sourceDocID string) models.Transaction {
	return models.Transaction{
		AssetID:     assetID,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:        typ,
		Status:      models.TransactionStatusConfirmed,
		Quantity:    qty,
		Price:       price,
		Amount:      amount,
		Currency:    "BRL",
		SourceDocID: sourceDocID,
	}
}

func TestIsPrimaryTrade(t *testing.T) {
	testCases := []struct {
		name     string
		tx       models.Transaction
		expected bool
	}{
		{
			name:     "brokerage note",
			tx:       trade(1, models.TransactionTypeBuy, 10, 5, 50, "B3-NEGOCIACAO-2026-03"),
			expected: true,
		},
		{
			name:     "marker with diacritics",
			tx:       trade(1, models.TransactionTypeBuy, 10, 5, 50, "b3-negociação-2026-03"),
			expected: true,
		},
		{
			name:     "consolidated statement",
			tx:       trade(1, models.TransactionTypeBuy, 10, 5, 50, "B3-RELATORIO-2026-03"),
			expected: false,
		},
		{
			name: "pending note is not primary",
			tx: func() models.Transaction {
				tx := trade(1, models.TransactionTypeBuy, 10, 5, 50, "B3-NEGOCIACAO-2026-03")
				tx.Status = models.TransactionStatusPending
				return tx
			}(),
			expected: false,
		},
		{
			name: "dividend does not move the position",
			tx: func() models.Transaction {
				tx := trade(1, models.TransactionTypeOther, 0, 0, 12, "B3-NEGOCIACAO-2026-03")
				return tx
			}(),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsPrimaryTrade(&tc.tx))
		})
	}
}

func TestShouldExcludeRequiresPrimary(t *testing.T) {
	// An asset whose only records are consolidated rows keeps them all.
	consolidated := trade(7, models.TransactionTypeBuy, 10, 5, 50, "B3-RELATORIO-2026-03")
	primaries := PrimaryTradeAssets([]models.Transaction{consolidated})

	assert.Empty(t, primaries)
	assert.False(t, ShouldExclude(&consolidated, primaries))
}

func TestShouldExcludeWithPrimaryPresent(t *testing.T) {
	primary := trade(7, models.TransactionTypeBuy, 10, 5, 50, "B3-NEGOCIACAO-2026-03")
	consolidated := trade(7, models.TransactionTypeBuy, 10, 5, 50, "B3-RELATORIO-2026-03")
	otherAsset := trade(8, models.TransactionTypeBuy, 3, 2, 6, "B3-RELATORIO-2026-03")

	primaries := PrimaryTradeAssets([]models.Transaction{primary, consolidated, otherAsset})

	assert.True(t, ShouldExclude(&consolidated, primaries))
	assert.False(t, ShouldExclude(&primary, primaries))
	assert.False(t, ShouldExclude(&otherAsset, primaries), "primary on asset 7 must not suppress asset 8")
}

// Suppression depends on a primary note existing anywhere in the batch,
// so the decision must not change with row order.
func TestPrimaryTradeAssetsOrderIndependent(t *testing.T) {
	primary := trade(7, models.TransactionTypeBuy, 10, 5, 50, "B3-NEGOCIACAO-2026-03")
	consolidated := trade(7, models.TransactionTypeSell, 4, 6, 24, "B3-RELATORIO-2026-03")

	forward := PrimaryTradeAssets([]models.Transaction{consolidated, primary})
	backward := PrimaryTradeAssets([]models.Transaction{primary, consolidated})

	assert.Equal(t, forward, backward)
	assert.True(t, ShouldExclude(&consolidated, forward))
	assert.True(t, ShouldExclude(&consolidated, backward))
}
