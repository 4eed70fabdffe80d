package interval

import (
	"fmt"

	"cmplot/domain/core"
)

// Defaults applied when the caller does not specify a level or an
// iteration count.
const (
	DefaultLevel      = 0.95
	DefaultIterations = 10000
)

// Interval is a (low, high) estimate of the central tendency of a sample.
// The zero value is the undefined interval: the deliberate "no inference
// band for this group" signal for degenerate samples, distinct from an
// estimator error.
type Interval struct {
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Defined bool    `json:"defined"`
}

// New creates a defined interval. low must not exceed high.
func New(low, high float64) Interval {
	return Interval{Low: low, High: high, Defined: true}
}

// Undefined returns the undefined interval sentinel.
func Undefined() Interval {
	return Interval{}
}

// Width returns high - low, or 0 for the undefined interval.
func (iv Interval) Width() float64 {
	if !iv.Defined {
		return 0
	}
	return iv.High - iv.Low
}

func (iv Interval) String() string {
	if !iv.Defined {
		return "(undefined)"
	}
	return fmt.Sprintf("(%g, %g)", iv.Low, iv.High)
}

// Method selects which estimator produces the interval for a sample.
type Method string

const (
	// MethodHDI is the Bayesian highest density interval from a Monte
	// Carlo posterior of the mean.
	MethodHDI Method = "hdi"
	// MethodCI is the classical Student-t confidence interval.
	MethodCI Method = "ci"
	// MethodIQR is the interquartile range (25th to 75th percentile).
	MethodIQR Method = "iqr"
	// MethodNone suppresses the inference band.
	MethodNone Method = "none"
)

// Validate rejects malformed method names.
func (m Method) Validate() error {
	switch m {
	case MethodHDI, MethodCI, MethodIQR, MethodNone:
		return nil
	}
	return core.NewInvalidArgumentError(fmt.Sprintf(
		"inference method must be one of hdi|ci|iqr|none, got %q", string(m)))
}
