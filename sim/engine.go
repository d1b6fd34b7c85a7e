// sim/engine.go
package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spin-sim/spin-sim/sim/trace"
)

// Phase is one entry of an annealing schedule: run Sweeps sweeps at
// Temperature.
type Phase struct {
	Temperature float64
	Sweeps      int
}

// Schedule is an ordered sequence of phases executed in order. Running a
// schedule is equivalent to issuing the same sequence of Update calls.
type Schedule []Phase

// Simulation evolves a spin assignment under a sparse energy model using
// Metropolis dynamics. The model and its adjacency index are fixed at
// construction and treated as immutable; the state, history and random
// source are exclusively owned by this instance.
//
// Every public call runs to completion before returning; there are no
// suspension points. Malformed inputs fail synchronously before any state
// mutation.
type Simulation struct {
	model     *Polynomial
	adjacency Adjacency
	// variables is the fixed, sorted draw universe. Sorting makes the
	// index-to-label mapping reproducible across runs.
	variables []string
	state     State
	initial   State
	history   *History
	rng       *rand.Rand
	energy    float64
	metrics   *Metrics
	trace     *trace.RunTrace
	// sweepCount is the global sweep counter across Update calls.
	sweepCount int
}

// NewSimulation creates a Simulation over model. If initial is nil, every
// variable starts at +1; otherwise initial must assign a value in {-1, +1}
// to every variable of the model. memory is the history capacity (>= 0).
// The model is copied, so later mutation of the caller's model does not
// stale the adjacency index.
func NewSimulation(model *Polynomial, initial State, memory int) (*Simulation, error) {
	m := model.Copy()
	vars := m.Variables()

	var init State
	if initial == nil {
		init = allSpinsUp(vars)
	} else {
		var err error
		init, err = validateSpin(initial, vars)
		if err != nil {
			return nil, err
		}
	}

	s := &Simulation{
		model:     m,
		adjacency: BuildAdjacency(m),
		variables: vars,
		initial:   init,
		state:     init.Clone(),
		history:   NewHistory(memory),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		metrics:   NewMetrics(),
	}
	s.energy = EvaluateSpin(s.model, s.state)
	s.metrics.observeEnergy(s.energy)
	return s, nil
}

// Seed reinitializes the simulation's random source deterministically.
// Seeding is local to this instance.
func (s *Simulation) Seed(key SimulationKey) {
	s.rng = newSource(key)
}

// SetTrace attaches a run trace recorder. Pass nil to detach.
func (s *Simulation) SetTrace(rt *trace.RunTrace) {
	s.trace = rt
}

// Memory returns the history capacity.
func (s *Simulation) Memory() int { return s.history.Capacity() }

// Variables returns the sorted variable set of the model.
func (s *Simulation) Variables() []string {
	return append([]string(nil), s.variables...)
}

// State returns an independent copy of the current assignment.
func (s *Simulation) State() State { return s.state.Clone() }

// InitialState returns an independent copy of the initial assignment.
func (s *Simulation) InitialState() State { return s.initial.Clone() }

// Energy returns the current energy. It is maintained incrementally from
// accepted flip deltas.
func (s *Simulation) Energy() float64 { return s.energy }

// Metrics returns the run metrics accumulated since construction or the
// last Reset.
func (s *Simulation) Metrics() *Metrics { return s.metrics }

// SetState replaces the current assignment. Every variable of the model
// must map to -1 or +1. History is not touched.
func (s *Simulation) SetState(state State) error {
	st, err := validateSpin(state, s.variables)
	if err != nil {
		return err
	}
	s.state = st
	s.energy = EvaluateSpin(s.model, s.state)
	return nil
}

// Reset restores the simulation to its state immediately after
// construction: initial assignment, empty history, fresh metrics. It is
// idempotent. The random source is not reseeded.
func (s *Simulation) Reset() {
	s.state = s.initial.Clone()
	s.history.Clear()
	s.energy = EvaluateSpin(s.model, s.state)
	s.metrics = NewMetrics()
	s.metrics.observeEnergy(s.energy)
	s.sweepCount = 0
}

// Update runs sweeps Metropolis sweeps at the given temperature. Each
// sweep first snapshots the pre-sweep state into the history buffer, then
// draws as many flip candidates as there are variables, independently and
// with replacement. A candidate flip is accepted if it does not increase
// energy, or, at positive temperature, with probability
// exp(-delta / temperature). At temperature zero the rule degenerates to
// greedy descent.
func (s *Simulation) Update(temperature float64, sweeps int) error {
	if temperature < 0 {
		return fmt.Errorf("%w: temperature must be non-negative, got %g", ErrInvalidScheduleEntry, temperature)
	}
	if sweeps < 0 {
		return fmt.Errorf("%w: cannot update a negative number of times, got %d", ErrInvalidUpdateCount, sweeps)
	}
	for i := 0; i < sweeps; i++ {
		s.sweep(temperature)
	}
	return nil
}

// sweep performs one full sweep at temperature. Sampling with replacement
// keeps the dynamics memoryless: sweep-to-sweep statistics do not depend
// on a fixed visitation order.
func (s *Simulation) sweep(temperature float64) {
	s.history.Push(s.state.Clone())

	accepted := 0
	n := len(s.variables)
	for j := 0; j < n; j++ {
		v := s.variables[s.rng.Intn(n)]

		// Flipping v flips the sign of every incident term exactly once,
		// so delta = -2 * (local energy of v's incident terms).
		var local float64
		for _, inc := range s.adjacency[v] {
			prod := inc.Coeff
			for _, u := range inc.Vars {
				prod *= float64(s.state[u])
			}
			local += prod
		}
		delta := -2 * local

		if delta <= 0 || (temperature > 0 && s.rng.Float64() < math.Exp(-delta/temperature)) {
			s.state[v] = -s.state[v]
			s.energy += delta
			accepted++
		}
	}

	s.sweepCount++
	s.metrics.observeSweep(n, accepted, s.energy)
	if s.trace != nil {
		s.trace.RecordSweep(trace.SweepRecord{
			Sweep:       s.sweepCount,
			Temperature: temperature,
			Energy:      s.energy,
			Accepted:    accepted,
			Proposed:    n,
		})
	}
	logrus.Debugf("[sweep %07d] T=%g accepted=%d/%d energy=%g", s.sweepCount, temperature, accepted, n, s.energy)
}

// Run executes a schedule: for each phase in order, Sweeps sweeps at that
// phase's temperature. The whole schedule is validated up front, so a
// malformed phase fails before any state mutation. Running a schedule
// produces results identical to issuing the equivalent Update calls with
// the same seeding point.
func (s *Simulation) Run(schedule Schedule) error {
	for _, p := range schedule {
		if p.Temperature < 0 {
			return fmt.Errorf("%w: temperature must be non-negative, got %g", ErrInvalidScheduleEntry, p.Temperature)
		}
		if p.Sweeps < 0 {
			return fmt.Errorf("%w: cannot update a negative number of times, got %d", ErrInvalidUpdateCount, p.Sweeps)
		}
	}
	for i, p := range schedule {
		logrus.Infof("[phase %d/%d] T=%g sweeps=%d", i+1, len(schedule), p.Temperature, p.Sweeps)
		if err := s.Update(p.Temperature, p.Sweeps); err != nil {
			return err
		}
	}
	return nil
}

// PastStates returns up to the n-1 most recent history snapshots followed
// by the current state, oldest first, all as independent copies. n == 1
// returns only the current state without consulting history; n <= 0
// returns up to Memory() snapshots plus the current state.
func (s *Simulation) PastStates(n int) []State {
	if n == 1 {
		return []State{s.state.Clone()}
	}
	var past []State
	if n <= 0 {
		past = s.history.Recent(s.history.Capacity())
	} else {
		past = s.history.Recent(n - 1)
	}
	return append(past, s.state.Clone())
}
