package trace

import (
	"math"
	"testing"
)

func TestSummarize_NilAndEmpty(t *testing.T) {
	if s := Summarize(nil); s.TotalSweeps != 0 {
		t.Errorf("nil trace: got %d sweeps, want 0", s.TotalSweeps)
	}
	if s := Summarize(NewRunTrace(TraceLevelSweeps)); s.TotalSweeps != 0 {
		t.Errorf("empty trace: got %d sweeps, want 0", s.TotalSweeps)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	// GIVEN a trace over three sweeps with a dip in the middle
	rt := NewRunTrace(TraceLevelSweeps)
	rt.RecordSweep(SweepRecord{Sweep: 1, Temperature: 2, Energy: 0, Accepted: 4, Proposed: 10})
	rt.RecordSweep(SweepRecord{Sweep: 2, Temperature: 1, Energy: -5, Accepted: 3, Proposed: 10})
	rt.RecordSweep(SweepRecord{Sweep: 3, Temperature: 0, Energy: -2, Accepted: 1, Proposed: 10})

	// WHEN summarized
	s := Summarize(rt)

	// THEN totals, rate and the minimum-energy sweep are correct
	if s.TotalSweeps != 3 {
		t.Errorf("TotalSweeps: got %d, want 3", s.TotalSweeps)
	}
	if s.TotalProposed != 30 || s.TotalAccepted != 8 {
		t.Errorf("totals: got %d/%d, want 8/30", s.TotalAccepted, s.TotalProposed)
	}
	if math.Abs(s.AcceptanceRate-8.0/30.0) > 1e-12 {
		t.Errorf("AcceptanceRate: got %v, want %v", s.AcceptanceRate, 8.0/30.0)
	}
	if s.MinEnergy != -5 || s.MinEnergySweep != 2 {
		t.Errorf("min: got %v at sweep %d, want -5 at sweep 2", s.MinEnergy, s.MinEnergySweep)
	}
	if s.FinalEnergy != -2 {
		t.Errorf("FinalEnergy: got %v, want -2", s.FinalEnergy)
	}
}
