package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enumerate calls fn with every assignment of vals to vars.
func enumerate(vars []string, vals []int8, fn func(State)) {
	n := len(vars)
	total := 1
	for i := 0; i < n; i++ {
		total *= len(vals)
	}
	for idx := 0; idx < total; idx++ {
		s := make(State, n)
		rem := idx
		for _, v := range vars {
			s[v] = vals[rem%len(vals)]
			rem /= len(vals)
		}
		fn(s)
	}
}

func TestBooleanToSpin_PreservesValue(t *testing.T) {
	// GIVEN a boolean model with mixed arities and an offset
	model, err := NewPolynomialFromTerms([]WeightedTerm{
		{Vars: Term{"x"}, Coeff: 1},
		{Vars: Term{"x", "y"}, Coeff: -2},
		{Vars: Term{"y", "z"}, Coeff: 3},
		{Vars: Term{"x", "y", "z"}, Coeff: 0.5},
	})
	require.NoError(t, err)
	model.AddOffset(1.25)

	// WHEN converted to the spin domain
	spinModel := BooleanToSpin(model)

	// THEN every boolean assignment evaluates identically under the
	// translated spin assignment
	enumerate(model.Variables(), []int8{0, 1}, func(boolState State) {
		want := EvaluateBoolean(model, boolState)
		got := EvaluateSpin(spinModel, BooleanToSpinState(boolState))
		assert.InDelta(t, want, got, 1e-12, "state %v", boolState)
	})
}

func TestSpinToBoolean_PreservesValue(t *testing.T) {
	// GIVEN a spin model
	model, err := NewPolynomialFromTerms([]WeightedTerm{
		{Vars: Term{"a"}, Coeff: -1},
		{Vars: Term{"a", "b"}, Coeff: 2},
	})
	require.NoError(t, err)

	// WHEN converted to the boolean domain
	boolModel := SpinToBoolean(model)

	// THEN every spin assignment evaluates identically
	enumerate(model.Variables(), []int8{-1, 1}, func(spinState State) {
		want := EvaluateSpin(model, spinState)
		got := EvaluateBoolean(boolModel, SpinToBooleanState(spinState))
		assert.InDelta(t, want, got, 1e-12, "state %v", spinState)
	})
}

func TestConversion_Roundtrip(t *testing.T) {
	// GIVEN a boolean model
	model, err := NewPolynomialFromTerms([]WeightedTerm{
		{Vars: Term{"x"}, Coeff: 1},
		{Vars: Term{"x", "y"}, Coeff: -3},
	})
	require.NoError(t, err)

	// WHEN converted to spin and back
	back := SpinToBoolean(BooleanToSpin(model))

	// THEN the original coefficients and offset are recovered
	assert.InDelta(t, model.Offset(), back.Offset(), 1e-12)
	model.Each(func(term Term, coeff float64) {
		assert.InDelta(t, coeff, back.Coefficient(term), 1e-12, "term %v", term)
	})
	back.Each(func(term Term, coeff float64) {
		assert.InDelta(t, model.Coefficient(term), coeff, 1e-12, "term %v", term)
	})
}

func TestBooleanToSpin_SingleVariableBias(t *testing.T) {
	// GIVEN the model x (coefficient +1 on one boolean variable)
	model, err := NewPolynomialFromTerms([]WeightedTerm{{Vars: Term{"v"}, Coeff: 1}})
	require.NoError(t, err)

	// WHEN converted: x = (1 - s)/2 → offset 1/2, coefficient -1/2 on s
	spinModel := BooleanToSpin(model)

	assert.InDelta(t, 0.5, spinModel.Offset(), 1e-12)
	assert.InDelta(t, -0.5, spinModel.Coefficient(Term{"v"}), 1e-12)
	assert.Equal(t, 1, spinModel.Len())
}

func TestEvaluate_BruteForceSum(t *testing.T) {
	// GIVEN a spin model and an explicit assignment
	model, err := NewPolynomialFromTerms([]WeightedTerm{
		{Vars: Term{"a", "b"}, Coeff: -1},
		{Vars: Term{"b", "c"}, Coeff: 2},
		{Vars: Term{"a"}, Coeff: 0.5},
	})
	require.NoError(t, err)
	model.AddOffset(3)

	state := State{"a": 1, "b": -1, "c": -1}

	// THEN energy is offset + sum of coeff * product:
	// 3 + (-1)(1)(-1) + 2(-1)(-1) + 0.5(1) = 3 + 1 + 2 + 0.5
	assert.InDelta(t, 6.5, EvaluateSpin(model, state), 1e-12)
}
