package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = valuation, W2xxx = market data, W3xxx = import.
type WarningCode string

const (
	WarnValuationUnresolved WarningCode = "W1001" // no candidate in the current-value chain produced a finite value
	WarnStaleQuoteUsed      WarningCode = "W1002" // resolved price came from the asset's stale snapshot field
	WarnQuoteFetchFailed    WarningCode = "W2001" // live quote lookup failed; chain degraded to cached candidates
	WarnAvgCostFetchFailed  WarningCode = "W2002" // average-cost service lookup failed
	WarnImportRowSkipped    WarningCode = "W3001" // statement row skipped (unknown ticker)
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
