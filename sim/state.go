package sim

import "fmt"

// State maps every variable of a model to its current value. The engine
// keeps values in the spin domain {-1, +1}; the boolean adapter presents
// the same assignment in {0, 1}.
type State map[string]int8

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	c := make(State, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// validateSpin checks that state assigns a value in {-1, +1} to every
// variable in vars. Extra keys are ignored, matching the container's
// "restrict to model variables" behavior.
func validateSpin(state State, vars []string) (State, error) {
	out := make(State, len(vars))
	for _, v := range vars {
		val, ok := state[v]
		if !ok {
			return nil, fmt.Errorf("%w: no value for variable %q", ErrInvalidStateValue, v)
		}
		if val != 1 && val != -1 {
			return nil, fmt.Errorf("%w: variable %q has value %d, want -1 or 1", ErrInvalidStateValue, v, val)
		}
		out[v] = val
	}
	return out, nil
}

// validateBoolean checks that state assigns a value in {0, 1} to every
// variable in vars.
func validateBoolean(state State, vars []string) (State, error) {
	out := make(State, len(vars))
	for _, v := range vars {
		val, ok := state[v]
		if !ok {
			return nil, fmt.Errorf("%w: no value for variable %q", ErrInvalidStateValue, v)
		}
		if val != 0 && val != 1 {
			return nil, fmt.Errorf("%w: variable %q has value %d, want 0 or 1", ErrInvalidStateValue, v, val)
		}
		out[v] = val
	}
	return out, nil
}

// allSpinsUp returns the default initial assignment: every variable +1.
// Under boolean = (1-spin)/2 this is also the all-zeros boolean default.
func allSpinsUp(vars []string) State {
	s := make(State, len(vars))
	for _, v := range vars {
		s[v] = 1
	}
	return s
}

// BooleanToSpinValue maps a boolean value to its spin counterpart:
// spin = 1 - 2*boolean.
func BooleanToSpinValue(b int8) int8 { return 1 - 2*b }

// SpinToBooleanValue maps a spin value to its boolean counterpart:
// boolean = (1 - spin) / 2.
func SpinToBooleanValue(s int8) int8 { return (1 - s) / 2 }

// BooleanToSpinState translates a boolean assignment to spin values.
func BooleanToSpinState(s State) State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = BooleanToSpinValue(v)
	}
	return out
}

// SpinToBooleanState translates a spin assignment to boolean values.
func SpinToBooleanState(s State) State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = SpinToBooleanValue(v)
	}
	return out
}
