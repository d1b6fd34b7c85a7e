package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelBundle holds a model, an optional initial state and an optional
// annealing schedule, loadable from a YAML file. An empty Domain defaults
// to spin. A nil Initial means "use the engine default" (all spins +1,
// equivalently all booleans 0).
type ModelBundle struct {
	Domain   string          `yaml:"domain"`
	Memory   int             `yaml:"memory"`
	Terms    []WeightedTerm  `yaml:"terms"`
	Offset   float64         `yaml:"offset"`
	Initial  map[string]int8 `yaml:"initial"`
	Schedule []PhaseConfig   `yaml:"schedule"`
}

// PhaseConfig is one schedule entry in YAML form.
type PhaseConfig struct {
	Temperature float64 `yaml:"temperature"`
	Sweeps      int     `yaml:"sweeps"`
}

// DomainSpin and DomainBoolean are the recognized variable domains.
const (
	DomainSpin    = "spin"
	DomainBoolean = "boolean"
)

// ValidDomains is the set of recognized domain names.
var ValidDomains = map[string]bool{"": true, DomainSpin: true, DomainBoolean: true}

// LoadModelBundle reads and parses a YAML model configuration file.
func LoadModelBundle(path string) (*ModelBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model config: %w", err)
	}
	var bundle ModelBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing model config: %w", err)
	}
	return &bundle, nil
}

// Validate checks domain, memory, terms, schedule and initial-state values.
func (b *ModelBundle) Validate() error {
	if !ValidDomains[b.Domain] {
		return fmt.Errorf("unknown domain %q", b.Domain)
	}
	if b.Memory < 0 {
		return fmt.Errorf("memory must be non-negative, got %d", b.Memory)
	}
	for i, wt := range b.Terms {
		if _, _, err := canonicalTerm(wt.Vars); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
	}
	for i, p := range b.Schedule {
		if p.Temperature < 0 {
			return fmt.Errorf("schedule entry %d: %w: temperature %g", i, ErrInvalidScheduleEntry, p.Temperature)
		}
		if p.Sweeps < 0 {
			return fmt.Errorf("schedule entry %d: %w: sweeps %d", i, ErrInvalidUpdateCount, p.Sweeps)
		}
	}
	for v, val := range b.Initial {
		switch b.Domain {
		case DomainBoolean:
			if val != 0 && val != 1 {
				return fmt.Errorf("initial[%s]: %w: %d", v, ErrInvalidStateValue, val)
			}
		default:
			if val != 1 && val != -1 {
				return fmt.Errorf("initial[%s]: %w: %d", v, ErrInvalidStateValue, val)
			}
		}
	}
	return nil
}

// Model builds the Polynomial described by the bundle.
func (b *ModelBundle) Model() (*Polynomial, error) {
	p, err := NewPolynomialFromTerms(b.Terms)
	if err != nil {
		return nil, err
	}
	p.AddOffset(b.Offset)
	return p, nil
}

// InitialState returns the bundle's initial assignment, or nil if none
// was given.
func (b *ModelBundle) InitialState() State {
	if len(b.Initial) == 0 {
		return nil
	}
	s := make(State, len(b.Initial))
	for k, v := range b.Initial {
		s[k] = v
	}
	return s
}

// SchedulePhases returns the bundle's schedule as engine phases.
func (b *ModelBundle) SchedulePhases() Schedule {
	out := make(Schedule, 0, len(b.Schedule))
	for _, p := range b.Schedule {
		out = append(out, Phase{Temperature: p.Temperature, Sweeps: p.Sweeps})
	}
	return out
}
