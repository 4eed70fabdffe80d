package inference

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"cmplot/domain/core"
	"cmplot/domain/interval"
)

// StudentTIntervalEstimate computes the classical two-sided Student-t
// confidence interval for the mean. The standard error uses the
// population (n divisor) standard deviation so that the frequentist and
// Bayesian estimators agree on interval width conventions.
//
// The t-confidence interval hinges on the normality assumption of the
// data. Deterministic; no randomness.
func StudentTIntervalEstimate(sample []float64, confLevel float64) (interval.Interval, error) {
	if confLevel <= 0 || confLevel >= 1 {
		return interval.Undefined(), core.NewInvalidArgumentError("confidence level must be in (0, 1)")
	}
	n := len(sample)
	if n < 2 {
		return interval.Undefined(), core.NewInsufficientDataError(n)
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return interval.Undefined(), err
	}
	sd, err := stats.StandardDeviationPopulation(sample)
	if err != nil {
		return interval.Undefined(), err
	}
	stdErr := sd / math.Sqrt(float64(n))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	tCritical := tDist.Quantile(0.5 + confLevel/2)

	margin := tCritical * stdErr
	return interval.New(mean-margin, mean+margin), nil
}
