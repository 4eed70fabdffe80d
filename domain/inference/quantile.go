package inference

import (
	"math"
	"sort"
)

// Quantile computes the q-th quantile (0 <= q <= 1) of values using the
// linear-interpolation convention (numpy default): position q*(n-1) in
// the sorted sample, interpolating between neighbors. Returns NaN for an
// empty or out-of-range input. The caller's slice is not mutated.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return quantileSorted(sorted, q)
}

// IQR returns the 25th and 75th percentile of values, sorting once.
func IQR(values []float64) (low, high float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.75)
}

func quantileSorted(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	fraction := pos - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
