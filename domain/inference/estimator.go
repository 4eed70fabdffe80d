package inference

import (
	"math/rand/v2"

	"cmplot/domain/interval"
)

// ComputeInterval selects and invokes the estimator for method, providing
// the uniform undefined-interval fallback for degenerate samples.
//
// A sample with fewer than 2 observations yields the undefined interval
// with no error, for every method: that is the documented "no inference
// band for this group" signal, not a failure. level is the confidence
// level for MethodCI and the credible mass for MethodHDI; iterations and
// src are consumed only by MethodHDI.
func ComputeInterval(sample []float64, method interval.Method, level float64, iterations int, src rand.Source) (interval.Interval, error) {
	if err := method.Validate(); err != nil {
		return interval.Undefined(), err
	}
	if len(sample) < 2 {
		return interval.Undefined(), nil
	}

	switch method {
	case interval.MethodHDI:
		return BayesianIntervalEstimate(sample, iterations, level, src)
	case interval.MethodCI:
		return StudentTIntervalEstimate(sample, level)
	case interval.MethodIQR:
		low, high := IQR(sample)
		return interval.New(low, high), nil
	default: // interval.MethodNone
		return interval.Undefined(), nil
	}
}
