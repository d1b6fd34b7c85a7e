package sim

import (
	"errors"
	"testing"
)

func TestState_Clone_Independent(t *testing.T) {
	// GIVEN a state and its clone
	s := State{"a": 1, "b": -1}
	c := s.Clone()

	// WHEN the clone mutates
	c["a"] = -1

	// THEN the original is unchanged
	if s["a"] != 1 {
		t.Errorf("original mutated through clone: got %d, want 1", s["a"])
	}
}

func TestValidateSpin_RejectsOutOfDomain(t *testing.T) {
	vars := []string{"a", "b"}

	if _, err := validateSpin(State{"a": 1, "b": 0}, vars); !errors.Is(err, ErrInvalidStateValue) {
		t.Errorf("value 0: got %v, want ErrInvalidStateValue", err)
	}
	if _, err := validateSpin(State{"a": 1}, vars); !errors.Is(err, ErrInvalidStateValue) {
		t.Errorf("missing variable: got %v, want ErrInvalidStateValue", err)
	}
}

func TestValidateSpin_IgnoresExtraKeys(t *testing.T) {
	// GIVEN an assignment with an extra variable
	got, err := validateSpin(State{"a": 1, "zzz": -1}, []string{"a"})
	if err != nil {
		t.Fatalf("validateSpin: %v", err)
	}

	// THEN the result is restricted to the model's variables
	if len(got) != 1 || got["a"] != 1 {
		t.Errorf("restricted state: got %v, want {a: 1}", got)
	}
}

func TestValidateBoolean_RejectsOutOfDomain(t *testing.T) {
	if _, err := validateBoolean(State{"a": -1}, []string{"a"}); !errors.Is(err, ErrInvalidStateValue) {
		t.Errorf("value -1: got %v, want ErrInvalidStateValue", err)
	}
}

func TestValueMaps_Roundtrip(t *testing.T) {
	// boolean = (1 - spin) / 2 and its inverse
	tests := []struct {
		spin    int8
		boolean int8
	}{
		{1, 0},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := SpinToBooleanValue(tt.spin); got != tt.boolean {
			t.Errorf("SpinToBooleanValue(%d): got %d, want %d", tt.spin, got, tt.boolean)
		}
		if got := BooleanToSpinValue(tt.boolean); got != tt.spin {
			t.Errorf("BooleanToSpinValue(%d): got %d, want %d", tt.boolean, got, tt.spin)
		}
	}
}

func TestStateTranslation_Roundtrip(t *testing.T) {
	// GIVEN a spin state
	s := State{"a": 1, "b": -1}

	// WHEN translated there and back
	got := BooleanToSpinState(SpinToBooleanState(s))

	// THEN the original values survive
	for k, v := range s {
		if got[k] != v {
			t.Errorf("roundtrip %s: got %d, want %d", k, got[k], v)
		}
	}
}

func TestAllSpinsUp_Default(t *testing.T) {
	s := allSpinsUp([]string{"a", "b"})
	if s["a"] != 1 || s["b"] != 1 {
		t.Errorf("default state: got %v, want all +1", s)
	}
}
