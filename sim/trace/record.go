// Package trace provides sweep-level run recording for annealing analysis.
// It has no dependency on the engine package; it stores pure data types.
package trace

// SweepRecord captures one completed Metropolis sweep.
type SweepRecord struct {
	Sweep       int     // global sweep counter, 1-based
	Temperature float64 // temperature the sweep ran at
	Energy      float64 // energy after the sweep
	Accepted    int     // accepted flips in the sweep
	Proposed    int     // proposed flips (the model's variable count)
}
