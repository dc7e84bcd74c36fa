package engine

import (
	"math"
)

// Epsilon is the float64 machine epsilon. Every average and weight
// computation in the engine guards its denominator with this value so
// that near-zero quantities and totals resolve to "no value" instead of
// ±Inf or NaN.
var Epsilon = math.Nextafter(1, 2) - 1

// IsFinite reports whether v is a usable number (not NaN, not ±Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SafeDivide returns num/den, or false when the denominator is too close
// to zero for the quotient to mean anything.
func SafeDivide(num, den float64) (float64, bool) {
	if math.Abs(den) <= Epsilon {
		return 0, false
	}
	return num / den, true
}

// Round2 rounds a quantity to two decimal places, matching brokerage lot
// conventions. Rounding happens per transaction, before summation; the
// cumulative drift versus rounding the final sum is an accepted trade-off.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nearZero reports whether a position quantity should be treated as flat.
func nearZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}
