package models

// PositionDTO is one reconciled asset position as served by the API.
// Nullable fields stay null when the valuation chains found no candidate.
type PositionDTO struct {
	AssetID         int64      `json:"asset_id"`
	Ticker          string     `json:"ticker"`
	Name            string     `json:"name"`
	AssetClass      AssetClass `json:"asset_class"`
	Currency        string     `json:"currency"`
	SourceLabels    string     `json:"source_labels,omitempty"`
	Quantity        float64    `json:"quantity"`
	InvestedAmount  float64    `json:"invested_amount"`
	AverageCost     *float64   `json:"average_cost"`
	CurrentPrice    *float64   `json:"current_price"`
	CurrentValue    *float64   `json:"current_value"`
	QuoteVsAverage  *float64   `json:"quote_vs_average"`
	UnrealizedPnL   *float64   `json:"unrealized_pnl"`
	PositionStatus  string     `json:"position_status"`
	PortfolioWeight float64    `json:"portfolio_weight"`
	ClassWeight     float64    `json:"class_weight"`
}

// PortfolioPositionsResponse is the payload for GET /portfolios/:id/positions.
type PortfolioPositionsResponse struct {
	PortfolioID int64         `json:"portfolio_id"`
	AsOf        string        `json:"as_of"`
	Positions   []PositionDTO `json:"positions"`
	Warnings    []Warning     `json:"warnings,omitempty"`
}

// TradeRowDTO is one executed trade in an asset's history.
type TradeRowDTO struct {
	TransactionID int64           `json:"transaction_id"`
	Date          FlexibleDate    `json:"date"`
	Type          TransactionType `json:"type"`
	Quantity      float64         `json:"quantity"`
	Price         float64         `json:"price"`
	Amount        float64         `json:"amount"`
	SourceTag     string          `json:"source_tag,omitempty"`
}

// TradeHistoryResponse is the payload for
// GET /portfolios/:id/assets/:asset_id/history.
type TradeHistoryResponse struct {
	PortfolioID  int64         `json:"portfolio_id"`
	AssetID      int64         `json:"asset_id"`
	Ticker       string        `json:"ticker"`
	Trades       []TradeRowDTO `json:"trades"`
	TradeCount   int           `json:"trade_count"`
	BuyCount     int           `json:"buy_count"`
	SellCount    int           `json:"sell_count"`
	AvgBuyPrice  *float64      `json:"avg_buy_price"`
	AvgSellPrice *float64      `json:"avg_sell_price"`
}

// ImportTransactionsResponse reports the outcome of a statement upload.
type ImportTransactionsResponse struct {
	PortfolioID int64     `json:"portfolio_id"`
	Imported    int       `json:"imported"`
	Skipped     int       `json:"skipped"`
	Warnings    []Warning `json:"warnings,omitempty"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
