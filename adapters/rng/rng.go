package rng

import (
	"math/rand/v2"
)

// Adapter hands out deterministic rand/v2 streams derived from a base seed
// and string keys, so per-group Monte Carlo work stays reproducible no
// matter how the caller schedules it.
type Adapter struct{}

func NewAdapter() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(name string, seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), hashString(name)))
}

// Source creates a deterministic source for a specific plot run and group
func (a *Adapter) Source(runID, groupKey string, baseSeed int64) rand.Source {
	derived := uint64(baseSeed)
	if runID != "" {
		derived = derived*31 + hashString(runID)
	}
	if groupKey != "" {
		derived = derived*31 + hashString(groupKey)
	}
	return rand.NewPCG(uint64(baseSeed), derived)
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint64 {
	var hash uint64 = 5381
	for _, c := range s {
		hash = hash*33 + uint64(c)
	}
	return hash
}
