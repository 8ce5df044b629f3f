package calculation

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Percentile levels reported for Monte Carlo bands.
var percentileLevels = [5]float64{0.10, 0.25, 0.50, 0.75, 0.90}

// percentileIndex is floor(n*p), clamped into the slice.
func percentileIndex(n int, p float64) int {
	idx := int(math.Floor(float64(n) * p))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// sortDecimals sorts values ascending in place.
func sortDecimals(values []decimal.Decimal) {
	slices.SortFunc(values, func(a, b decimal.Decimal) int { return a.Cmp(b) })
}

// pickPercentile returns the nearest-rank value of an ascending slice.
func pickPercentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	return sorted[percentileIndex(len(sorted), p)]
}

// pickPercentileInt returns the nearest-rank value of an ascending slice,
// or nil when it is empty.
func pickPercentileInt(sorted []int, p float64) *int {
	if len(sorted) == 0 {
		return nil
	}
	v := sorted[percentileIndex(len(sorted), p)]
	return &v
}
