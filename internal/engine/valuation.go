package engine

import (
	"github.com/jcoelho/carteira/internal/models"
)

// PositionStatus is the sign of an asset's unrealized result.
type PositionStatus string

const (
	StatusNeutral  PositionStatus = "neutral"
	StatusPositive PositionStatus = "positive"
	StatusNegative PositionStatus = "negative"
)

// ValuationInputs is everything one asset's valuation pass may consult.
// Any pointer may be nil; a missing input is just an empty candidate.
type ValuationInputs struct {
	Asset          *models.Asset
	Quantity       float64 // reconciled position quantity
	InvestedAmount float64
	LiveQuote      *float64             // freshly fetched close for the asset's ticker
	Metrics        *models.AssetMetrics // cached server-side metrics snapshot
	AverageCost    *float64             // authoritative external average cost
}

// Valuation is the engine's best-effort view of an asset after walking
// the fallback chains. Fields stay nil when no candidate was accepted.
type Valuation struct {
	AverageCost    *float64
	CurrentPrice   *float64
	CurrentValue   *float64
	QuoteVsAverage *float64
	UnrealizedPnL  *float64
	Status         PositionStatus
}

// candidate produces one prioritized value for a resolution chain, or
// nil when its input is absent.
type candidate func() *float64

// resolve walks candidates in priority order and returns the first one
// accepted. Keeping the order as a plain slice makes the priority a
// reviewable data structure rather than nested conditionals.
func resolve(accept func(float64) bool, chain []candidate) *float64 {
	for _, c := range chain {
		v := c()
		if v != nil && accept(*v) {
			out := *v
			return &out
		}
	}
	return nil
}

// ResolveValuation resolves average cost, current price and current
// value through their independent chains, then derives the dependent
// metrics. A failed or missing external input degrades that one field to
// nil; it never aborts the asset or its siblings.
func ResolveValuation(in ValuationInputs) Valuation {
	var v Valuation

	v.AverageCost = resolve(IsFinite, []candidate{
		func() *float64 { return in.AverageCost },
		func() *float64 {
			if in.Metrics == nil {
				return nil
			}
			return in.Metrics.AverageCost
		},
		func() *float64 {
			if q, ok := SafeDivide(in.InvestedAmount, in.Quantity); ok {
				return &q
			}
			return nil
		},
	})

	// A cached quote of exactly zero on an open position is missing
	// data, not a real price, so candidates on open positions must also
	// clear the epsilon bar.
	flat := nearZero(in.Quantity)
	acceptPrice := func(p float64) bool {
		return IsFinite(p) && (flat || !nearZero(p))
	}
	v.CurrentPrice = resolve(acceptPrice, []candidate{
		func() *float64 { return in.LiveQuote },
		func() *float64 {
			if in.Metrics == nil {
				return nil
			}
			return in.Metrics.CurrentQuote
		},
		func() *float64 { return in.Asset.CurrentPrice },
		func() *float64 {
			if in.Asset.CurrentValue == nil || !IsFinite(in.Quantity) {
				return nil
			}
			if p, ok := SafeDivide(*in.Asset.CurrentValue, in.Quantity); ok {
				return &p
			}
			return nil
		},
	})

	v.CurrentValue = resolve(IsFinite, []candidate{
		func() *float64 {
			if in.Metrics == nil {
				return nil
			}
			return in.Metrics.MarketValue
		},
		func() *float64 {
			if v.CurrentPrice == nil || !IsFinite(in.Quantity) {
				return nil
			}
			value := in.Quantity * *v.CurrentPrice
			return &value
		},
		func() *float64 { return in.Asset.CurrentValue },
	})

	if v.CurrentPrice != nil && v.AverageCost != nil {
		diff := *v.CurrentPrice - *v.AverageCost
		v.QuoteVsAverage = &diff
	}
	if v.CurrentValue != nil && IsFinite(in.InvestedAmount) {
		pnl := *v.CurrentValue - in.InvestedAmount
		v.UnrealizedPnL = &pnl
	}

	v.Status = StatusNeutral
	if v.UnrealizedPnL != nil && !nearZero(*v.UnrealizedPnL) {
		if *v.UnrealizedPnL > 0 {
			v.Status = StatusPositive
		} else {
			v.Status = StatusNegative
		}
	}

	return v
}
