package marketdata

// envelope is the market-data gateway's standard response wrapper.
// Failures come back with ok=false and a machine-readable code rather
// than a non-200 status.
type envelope struct {
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// quoteResponse wraps a single close quote.
type quoteResponse struct {
	envelope
	Payload struct {
		Ticker   string   `json:"ticker"`
		Close    *float64 `json:"close"`
		Currency string   `json:"currency,omitempty"`
	} `json:"payload"`
}

// averageCostResponse wraps the average-cost metric for one holding.
type averageCostResponse struct {
	envelope
	Payload struct {
		Ticker      string   `json:"ticker"`
		AverageCost *float64 `json:"average_cost"`
	} `json:"payload"`
}
