package models

import (
	"time"
)

// AssetClass buckets assets for class-level weight metrics.
type AssetClass string

const (
	AssetClassStock       AssetClass = "STOCK"
	AssetClassFII         AssetClass = "FII"
	AssetClassETF         AssetClass = "ETF"
	AssetClassBDR         AssetClass = "BDR"
	AssetClassFixedIncome AssetClass = "FIXED INCOME"
	AssetClassCrypto      AssetClass = "CRYPTO"
	AssetClassOther       AssetClass = "OTHER"
)

// AssetStatus marks whether an asset is still tracked.
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusArchived AssetStatus = "archived"
)

// Asset is a tracked financial instrument. The CurrentPrice, CurrentValue
// and Quantity columns are stale snapshots written by external processes;
// the engine only uses them as last-resort fallbacks and never writes
// them back.
type Asset struct {
	ID           int64       `json:"id"`
	PortfolioID  int64       `json:"portfolio_id"`
	Ticker       string      `json:"ticker"`
	Name         string      `json:"name"`
	AssetClass   AssetClass  `json:"asset_class"`
	Currency     string      `json:"currency"`
	Country      string      `json:"country"`
	Status       AssetStatus `json:"status"`
	Source       string      `json:"source"` // free-text provenance, e.g. "Importado XP"
	CurrentPrice *float64    `json:"current_price,omitempty"`
	CurrentValue *float64    `json:"current_value,omitempty"`
	Quantity     *float64    `json:"quantity,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// AssetMetrics is one asset's slice of the server-side portfolio metrics
// snapshot. All fields are nullable; a missing metric is simply skipped
// by the valuation fallback chains.
type AssetMetrics struct {
	AssetID      int64      `json:"asset_id"`
	MarketValue  *float64   `json:"market_value,omitempty"`
	AverageCost  *float64   `json:"average_cost,omitempty"`
	CurrentQuote *float64   `json:"current_quote,omitempty"`
	ComputedAt   *time.Time `json:"computed_at,omitempty"`
}
