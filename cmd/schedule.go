package cmd

import (
	"fmt"
	"strconv"
	"strings"

	sim "github.com/spin-sim/spin-sim/sim"
)

// ParseSchedule parses a comma-separated list of temperature:sweeps pairs,
// e.g. "4:25,2:25,1:10", into an engine schedule. Temperatures must be
// non-negative and sweep counts non-negative integers.
func ParseSchedule(s string) (sim.Schedule, error) {
	parts := strings.Split(s, ",")
	schedule := make(sim.Schedule, 0, len(parts))
	for _, part := range parts {
		fields := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid schedule entry %q (expected temperature:sweeps)", strings.TrimSpace(part))
		}
		temp, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature in %q: %w", part, err)
		}
		if temp < 0 {
			return nil, fmt.Errorf("temperature must be non-negative, got %g", temp)
		}
		sweeps, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid sweep count in %q: %w", part, err)
		}
		if sweeps < 0 {
			return nil, fmt.Errorf("sweep count must be non-negative, got %d", sweeps)
		}
		schedule = append(schedule, sim.Phase{Temperature: temp, Sweeps: sweeps})
	}
	return schedule, nil
}
