package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSweeps captures one record per completed sweep.
	TraceLevelSweeps TraceLevel = "sweeps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelSweeps: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// RunTrace collects sweep records during a simulation run.
type RunTrace struct {
	Level  TraceLevel
	Sweeps []SweepRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(level TraceLevel) *RunTrace {
	return &RunTrace{
		Level:  level,
		Sweeps: make([]SweepRecord, 0),
	}
}

// RecordSweep appends a sweep record. No-op unless the trace level
// captures sweeps.
func (rt *RunTrace) RecordSweep(record SweepRecord) {
	if rt.Level != TraceLevelSweeps {
		return
	}
	rt.Sweeps = append(rt.Sweeps, record)
}
