package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcoelho/carteira/internal/models"
)

func TestParseStatementCSV(t *testing.T) {
	input := `date,type,ticker,quantity,price,amount,currency,institution,source_doc
2026-03-10,buy,PETR4,10,100.50,1005.00,BRL,XP Investimentos,B3-NEGOCIACAO-2026-03
2026-03-11,venda,HGLG11,2,155.00,310.00,,NuBank,B3-RELATORIO-2026-03
`

	rows, err := ParseStatementCSV(strings.NewReader(input))
	assert.NoError(t, err)
	if !assert.Len(t, rows, 2) {
		return
	}

	assert.Equal(t, "PETR4", rows[0].Ticker)
	assert.Equal(t, models.TransactionTypeBuy, rows[0].Type)
	assert.InDelta(t, 10.0, rows[0].Quantity, 1e-9)
	assert.InDelta(t, 100.50, rows[0].Price, 1e-9)
	assert.InDelta(t, 1005.00, rows[0].Amount, 1e-9)
	assert.Equal(t, "BRL", rows[0].Currency)
	assert.Equal(t, "XP Investimentos", rows[0].Institution)
	assert.Equal(t, "B3-NEGOCIACAO-2026-03", rows[0].SourceDocID)

	// Portuguese type spelling and the currency default.
	assert.Equal(t, models.TransactionTypeSell, rows[1].Type)
	assert.Equal(t, "BRL", rows[1].Currency)
	assert.Equal(t, "2026-03-11", rows[1].Date.Format("2006-01-02"))
}

func TestParseStatementCSVOptionalColumnsAbsent(t *testing.T) {
	input := `date,type,ticker,quantity,price,amount
2026-03-10,compra,PETR4,10,100.50,1005.00
`

	rows, err := ParseStatementCSV(strings.NewReader(input))
	assert.NoError(t, err)
	if !assert.Len(t, rows, 1) {
		return
	}
	assert.Equal(t, models.TransactionTypeBuy, rows[0].Type)
	assert.Equal(t, "BRL", rows[0].Currency)
	assert.Empty(t, rows[0].Institution)
	assert.Empty(t, rows[0].SourceDocID)
}

func TestParseStatementCSVSkipsEmptyTicker(t *testing.T) {
	input := `date,type,ticker,quantity,price,amount
2026-03-10,buy,,10,100.50,1005.00
2026-03-11,buy,PETR4,1,100.00,100.00
`

	rows, err := ParseStatementCSV(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseStatementCSVErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		msg   string
	}{
		{
			name:  "missing required column",
			input: "date,type,ticker,quantity,price\n",
			msg:   "missing required column: amount",
		},
		{
			name:  "bad date",
			input: "date,type,ticker,quantity,price,amount\n10/03/2026,buy,PETR4,10,100,1000\n",
			msg:   "invalid date",
		},
		{
			name:  "empty type",
			input: "date,type,ticker,quantity,price,amount\n2026-03-10,,PETR4,10,100,1000\n",
			msg:   "empty transaction type",
		},
		{
			name:  "bad quantity",
			input: "date,type,ticker,quantity,price,amount\n2026-03-10,buy,PETR4,ten,100,1000\n",
			msg:   "invalid quantity",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStatementCSV(strings.NewReader(tc.input))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	testCases := []struct {
		raw      string
		expected models.TransactionType
	}{
		{raw: "buy", expected: models.TransactionTypeBuy},
		{raw: "COMPRA", expected: models.TransactionTypeBuy},
		{raw: "sell", expected: models.TransactionTypeSell},
		{raw: "Venda", expected: models.TransactionTypeSell},
		{raw: "subscricao", expected: models.TransactionTypeSubscription},
		{raw: "subscrição", expected: models.TransactionTypeSubscription},
		{raw: "dividend", expected: models.TransactionTypeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parseTransactionType(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
