package trace

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	TotalSweeps    int
	TotalProposed  int
	TotalAccepted  int
	AcceptanceRate float64 // accepted / proposed over the whole run
	FinalEnergy    float64
	MinEnergy      float64
	MinEnergySweep int // sweep at which MinEnergy was first reached
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{}
	if rt == nil || len(rt.Sweeps) == 0 {
		return summary
	}

	summary.TotalSweeps = len(rt.Sweeps)
	summary.MinEnergy = rt.Sweeps[0].Energy
	summary.MinEnergySweep = rt.Sweeps[0].Sweep
	for _, r := range rt.Sweeps {
		summary.TotalProposed += r.Proposed
		summary.TotalAccepted += r.Accepted
		if r.Energy < summary.MinEnergy {
			summary.MinEnergy = r.Energy
			summary.MinEnergySweep = r.Sweep
		}
	}
	summary.FinalEnergy = rt.Sweeps[len(rt.Sweeps)-1].Energy
	if summary.TotalProposed > 0 {
		summary.AcceptanceRate = float64(summary.TotalAccepted) / float64(summary.TotalProposed)
	}
	return summary
}
