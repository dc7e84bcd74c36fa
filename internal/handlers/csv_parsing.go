package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jcoelho/carteira/internal/models"
)

// ParseStatementCSV parses a brokerage statement export into rows ready
// for the import service.
// Required columns: date, type, ticker, quantity, price, amount
// Optional columns: currency, institution, source_doc (missing columns
// default to ""); currency defaults to BRL.
// Rows with an empty ticker are skipped.
func ParseStatementCSV(r io.Reader) ([]models.StatementRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"date", "type", "ticker", "quantity", "price", "amount"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	optionalCol := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []models.StatementRow
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		ticker := strings.TrimSpace(record[colIdx["ticker"]])
		if ticker == "" {
			continue
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[colIdx["date"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date %q", rowNum, record[colIdx["date"]])
		}

		txType, err := parseTransactionType(record[colIdx["type"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(record[colIdx["quantity"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q", rowNum, record[colIdx["quantity"]])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[colIdx["price"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", rowNum, record[colIdx["price"]])
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[colIdx["amount"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q", rowNum, record[colIdx["amount"]])
		}

		currency := optionalCol(record, "currency")
		if currency == "" {
			currency = "BRL"
		}

		rows = append(rows, models.StatementRow{
			Date:        date,
			Type:        txType,
			Ticker:      ticker,
			Quantity:    quantity,
			Price:       price,
			Amount:      amount,
			Currency:    currency,
			Institution: optionalCol(record, "institution"),
			SourceDocID: optionalCol(record, "source_doc"),
		})
	}

	return rows, nil
}

// parseTransactionType accepts the English enum values plus the
// Portuguese spellings that appear in raw B3 exports.
func parseTransactionType(raw string) (models.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "buy", "compra":
		return models.TransactionTypeBuy, nil
	case "sell", "venda":
		return models.TransactionTypeSell, nil
	case "subscription", "subscricao", "subscrição":
		return models.TransactionTypeSubscription, nil
	case "":
		return "", fmt.Errorf("empty transaction type")
	}
	return models.TransactionTypeOther, nil
}
