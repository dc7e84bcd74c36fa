package models

import (
	"time"
)

// TransactionType classifies the economic effect of a ledger entry.
// Only buy, sell and subscription move a position; anything else is
// carried through untouched and ignored by aggregation.
type TransactionType string

const (
	TransactionTypeBuy          TransactionType = "buy"
	TransactionTypeSell         TransactionType = "sell"
	TransactionTypeSubscription TransactionType = "subscription"
	TransactionTypeOther        TransactionType = "other"
)

// TransactionStatus represents the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is one row of the brokerage ledger. Rows are created by the
// import surface and are read-only to the reconciliation engine.
//
// Quantity is entered positive regardless of direction; the sign is
// derived from Type. Amount is the signed cash effect (positive for buys).
type Transaction struct {
	ID          int64             `json:"id"`
	PortfolioID int64             `json:"portfolio_id"`
	AssetID     int64             `json:"asset_id"`
	Date        time.Time         `json:"date"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Quantity    float64           `json:"quantity"`
	Price       float64           `json:"price"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	SourceDocID string            `json:"source_doc_id"` // free text, e.g. "B3-NEGOCIACAO-2024-04"
	Institution string            `json:"institution"`   // free text, e.g. "NU INVEST CORRETORA"
	CreatedAt   time.Time         `json:"created_at"`
}

// MovesPosition reports whether this transaction's type participates in
// position aggregation at all.
func (t *Transaction) MovesPosition() bool {
	switch t.Type {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeSubscription:
		return true
	}
	return false
}
