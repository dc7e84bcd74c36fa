package engine

// WeightMetrics is an asset's share of the portfolio and of its asset
// class, plus the substitution-adjusted totals used to compute them.
type WeightMetrics struct {
	PortfolioWeight        float64
	ClassWeight            float64
	AdjustedPortfolioTotal float64
	AdjustedClassTotal     float64
}

// AdjustTotal replaces an asset's stored value inside a stored aggregate
// with its freshly resolved value. Dividing by the unmodified stored
// total would double-count or under-count the one asset whose value was
// just recomputed; the substitution keeps the aggregate consistent with
// a single fresh data point without re-resolving the whole portfolio.
func AdjustTotal(storedTotal, storedValue, resolvedValue float64) float64 {
	return storedTotal - storedValue + resolvedValue
}

// weightOf returns value/total, or 0 when the total is not positive.
func weightOf(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	w, ok := SafeDivide(value, total)
	if !ok {
		return 0
	}
	return w
}

// ComputeWeights derives portfolio and class weights for one asset.
// storedValue is the asset's previously stored/cached value (possibly
// stale); storedPortfolioTotal and storedClassTotal are sums of stored
// values across the portfolio and the asset's class respectively.
func ComputeWeights(resolvedValue, storedValue, storedPortfolioTotal, storedClassTotal float64) WeightMetrics {
	m := WeightMetrics{
		AdjustedPortfolioTotal: AdjustTotal(storedPortfolioTotal, storedValue, resolvedValue),
		AdjustedClassTotal:     AdjustTotal(storedClassTotal, storedValue, resolvedValue),
	}
	m.PortfolioWeight = weightOf(resolvedValue, m.AdjustedPortfolioTotal)
	m.ClassWeight = weightOf(resolvedValue, m.AdjustedClassTotal)
	return m
}
