package inference

import (
	"math"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"cmplot/domain/core"
	"cmplot/domain/interval"
)

// BayesianIntervalEstimate approximates the Bayesian credible interval for
// the population mean of sample under a non-informative-prior analogue of
// the t-test. It draws iterations values from a Student-t distribution
// with n-1 degrees of freedom, scales by the standard error of the mean
// (population divisor) and shifts by the sample mean, then reduces the
// simulated posterior with HDIFromSamples.
//
// src seeds the Monte Carlo draws; two calls with the same inputs and an
// identically seeded source produce identical intervals. A nil src falls
// back to the process-wide generator.
func BayesianIntervalEstimate(sample []float64, iterations int, credibleMass float64, src rand.Source) (interval.Interval, error) {
	n := len(sample)
	if n < 2 {
		return interval.Undefined(), core.NewInsufficientDataError(n)
	}
	if iterations <= 0 {
		return interval.Undefined(), core.NewInvalidArgumentError("iterations must be positive")
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

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1), Src: src}
	posterior := make([]float64, iterations)
	for i := range posterior {
		posterior[i] = mean + stdErr*tDist.Rand()
	}

	return HDIFromSamples(posterior, credibleMass)
}
