package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible run. Two simulations
// constructed identically and seeded with the same SimulationKey at the
// same call points MUST produce bit-for-bit identical state and history
// sequences.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// newSource returns a fresh deterministic random source for key. Each
// Simulation owns its source, so seeding is local to the instance and
// never a process-wide side effect.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
func newSource(key SimulationKey) *rand.Rand {
	return rand.New(rand.NewSource(int64(key)))
}
