package ports

import (
	"math/rand/v2"
)

// RNG provides seeded random number generation for deterministic operations
type RNG interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(name string, seed int64) *rand.Rand

	// Source creates a deterministic source for a specific plot run and group.
	// This ensures Monte Carlo interval estimates are identical for the same
	// run/group combination regardless of execution order. The returned value
	// satisfies distuv's Src field directly.
	Source(runID, groupKey string, baseSeed int64) rand.Source
}
