// Tracks run-wide simulation metrics for final reporting.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a simulation run for final
// reporting. Useful for evaluating schedule quality and debugging
// dynamics over time.
type Metrics struct {
	SweepsRun     int       // number of completed sweeps
	ProposedFlips int       // total flip candidates drawn
	AcceptedFlips int       // total accepted flips
	EnergyTrace   []float64 // energy after construction and after each sweep
}

// NewMetrics returns an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{EnergyTrace: make([]float64, 0)}
}

// observeEnergy appends an energy sample outside a sweep (construction,
// reset).
func (m *Metrics) observeEnergy(energy float64) {
	m.EnergyTrace = append(m.EnergyTrace, energy)
}

// observeSweep records one completed sweep.
func (m *Metrics) observeSweep(proposed, accepted int, energy float64) {
	m.SweepsRun++
	m.ProposedFlips += proposed
	m.AcceptedFlips += accepted
	m.EnergyTrace = append(m.EnergyTrace, energy)
}

// AcceptanceRate returns accepted/proposed over the whole run, or zero if
// nothing was proposed.
func (m *Metrics) AcceptanceRate() float64 {
	if m.ProposedFlips == 0 {
		return 0
	}
	return float64(m.AcceptedFlips) / float64(m.ProposedFlips)
}

// BestEnergy returns the lowest energy seen over the run.
func (m *Metrics) BestEnergy() float64 {
	if len(m.EnergyTrace) == 0 {
		return 0
	}
	return floats.Min(m.EnergyTrace)
}

// Print displays aggregated metrics at the end of a run: acceptance rate
// and energy-trajectory statistics.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Sweeps Run           : %d\n", m.SweepsRun)
	fmt.Printf("Accepted Flips       : %d / %d (%.2f%%)\n",
		m.AcceptedFlips, m.ProposedFlips, 100*m.AcceptanceRate())
	if len(m.EnergyTrace) > 0 {
		mean := stat.Mean(m.EnergyTrace, nil)
		std := stat.StdDev(m.EnergyTrace, nil)
		fmt.Printf("Final Energy         : %g\n", m.EnergyTrace[len(m.EnergyTrace)-1])
		fmt.Printf("Best Energy          : %g\n", m.BestEnergy())
		fmt.Printf("Mean Energy          : %.4f (stddev %.4f)\n", mean, std)
	}
}
