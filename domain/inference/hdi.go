package inference

import (
	"math"
	"sort"

	"cmplot/domain/core"
	"cmplot/domain/interval"
)

// HDIFromSamples computes the highest density interval from a sample of
// representative values, estimated as the shortest contiguous interval of
// the sorted sample containing at least ceil(credibleMass * n) points.
// The result assumes the empirical distribution is reasonably unimodal.
//
// The caller's slice is never mutated; the sort operates on a copy. At
// least 2 samples are required, and the credible mass must leave room for
// at least one candidate window (ceil(credibleMass*n) < n), otherwise
// ErrInvalidArgument is returned.
func HDIFromSamples(samples []float64, credibleMass float64) (interval.Interval, error) {
	if credibleMass <= 0 || credibleMass >= 1 {
		return interval.Undefined(), core.NewInvalidArgumentError("credible mass must be in (0, 1)")
	}
	n := len(samples)
	if n < 2 {
		return interval.Undefined(), core.NewInsufficientDataError(n)
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	ciIdxInc := int(math.Ceil(credibleMass * float64(n)))
	nCI := n - ciIdxInc
	if nCI <= 0 {
		return interval.Undefined(), core.NewInvalidArgumentError("sample too small for requested credible mass")
	}

	// Linear scan over candidate window starts; ties keep the lowest index.
	best := 0
	bestWidth := sorted[ciIdxInc] - sorted[0]
	for i := 1; i < nCI; i++ {
		w := sorted[i+ciIdxInc] - sorted[i]
		if w < bestWidth {
			best = i
			bestWidth = w
		}
	}

	return interval.New(sorted[best], sorted[best+ciIdxInc]), nil
}
