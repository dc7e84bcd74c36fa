package models

import (
	"time"
)

// StatementRow is one parsed line of an uploaded brokerage statement,
// before ticker resolution. Quantity is positive regardless of side.
type StatementRow struct {
	Date        time.Time
	Type        TransactionType
	Ticker      string
	Quantity    float64
	Price       float64
	Amount      float64
	Currency    string
	Institution string
	SourceDocID string
}
