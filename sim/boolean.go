package sim

import "github.com/spin-sim/spin-sim/sim/trace"

// BooleanSimulation presents a boolean-domain ({0,1}) view over a spin
// Simulation. The boolean model is converted to the equivalent spin model
// once at construction; afterward, state crosses the boundary through
// boolean = (1 - spin) / 2 on every read and write. The adapter holds no
// boolean-domain state of its own; all dynamics run in the wrapped
// engine.
type BooleanSimulation struct {
	sim *Simulation
}

// NewBooleanSimulation creates a boolean simulation over a boolean-domain
// model. If initial is nil, every variable starts at 0, which is the
// engine's all-spins-up default, so no translation is needed in that
// case. Otherwise initial must assign a value in {0, 1} to every variable
// of the model.
func NewBooleanSimulation(model *Polynomial, initial State, memory int) (*BooleanSimulation, error) {
	spinModel := BooleanToSpin(model)

	var spinInitial State
	if initial != nil {
		validated, err := validateBoolean(initial, model.Variables())
		if err != nil {
			return nil, err
		}
		spinInitial = BooleanToSpinState(validated)
	}

	s, err := NewSimulation(spinModel, spinInitial, memory)
	if err != nil {
		return nil, err
	}
	return &BooleanSimulation{sim: s}, nil
}

// Seed reinitializes the wrapped engine's random source.
func (b *BooleanSimulation) Seed(key SimulationKey) { b.sim.Seed(key) }

// SetTrace attaches a run trace recorder to the wrapped engine.
func (b *BooleanSimulation) SetTrace(rt *trace.RunTrace) { b.sim.SetTrace(rt) }

// Memory returns the history capacity.
func (b *BooleanSimulation) Memory() int { return b.sim.Memory() }

// Variables returns the sorted variable set of the model.
func (b *BooleanSimulation) Variables() []string { return b.sim.Variables() }

// State returns an independent copy of the current assignment in the
// boolean domain.
func (b *BooleanSimulation) State() State {
	return SpinToBooleanState(b.sim.State())
}

// InitialState returns an independent copy of the initial assignment in
// the boolean domain.
func (b *BooleanSimulation) InitialState() State {
	return SpinToBooleanState(b.sim.InitialState())
}

// SetState replaces the current assignment. Every variable of the model
// must map to 0 or 1.
func (b *BooleanSimulation) SetState(state State) error {
	validated, err := validateBoolean(state, b.sim.Variables())
	if err != nil {
		return err
	}
	return b.sim.SetState(BooleanToSpinState(validated))
}

// Energy returns the current objective value. The spin conversion is
// value-preserving, so this equals the boolean model evaluated at State().
func (b *BooleanSimulation) Energy() float64 { return b.sim.Energy() }

// Metrics returns the run metrics of the wrapped engine.
func (b *BooleanSimulation) Metrics() *Metrics { return b.sim.Metrics() }

// Reset restores the simulation to its post-construction state.
func (b *BooleanSimulation) Reset() { b.sim.Reset() }

// Update runs sweeps Metropolis sweeps at the given temperature.
func (b *BooleanSimulation) Update(temperature float64, sweeps int) error {
	return b.sim.Update(temperature, sweeps)
}

// Run executes a schedule.
func (b *BooleanSimulation) Run(schedule Schedule) error {
	return b.sim.Run(schedule)
}

// PastStates returns history snapshots plus the current state, oldest
// first, translated to the boolean domain. See Simulation.PastStates for
// the meaning of n.
func (b *BooleanSimulation) PastStates(n int) []State {
	spinStates := b.sim.PastStates(n)
	out := make([]State, 0, len(spinStates))
	for _, s := range spinStates {
		out = append(out, SpinToBooleanState(s))
	}
	return out
}
