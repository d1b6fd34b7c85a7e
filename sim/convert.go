package sim

// Model conversion between the boolean domain ({0,1} variables) and the
// spin domain ({-1,+1} variables). The two are related by
// boolean = (1 - spin) / 2, so each term expands algebraically into one
// term per subset of its labels; resulting terms merge by coefficient
// summation under the normal container invariants, and the empty subset
// accumulates into the model offset. The mapping is exact in both
// directions: converting a model and evaluating it at the translated
// state gives the same value as the original.

// BooleanToSpin converts a boolean-domain model into the equivalent
// spin-domain model by substituting b = (1 - s) / 2 in every term.
func BooleanToSpin(model *Polynomial) *Polynomial {
	out := NewPolynomial()
	out.AddOffset(model.Offset())
	model.Each(func(t Term, coeff float64) {
		// c * prod (1 - s_i)/2  =  c/2^k * sum over subsets S of (-1)^|S| prod_{i in S} s_i
		base := coeff
		for range t {
			base /= 2
		}
		expandSubsets(out, t, base, -1)
	})
	return out
}

// SpinToBoolean converts a spin-domain model into the equivalent
// boolean-domain model by substituting s = 1 - 2*b in every term.
func SpinToBoolean(model *Polynomial) *Polynomial {
	out := NewPolynomial()
	out.AddOffset(model.Offset())
	model.Each(func(t Term, coeff float64) {
		// c * prod (1 - 2*b_i)  =  c * sum over subsets S of (-2)^|S| prod_{i in S} b_i
		expandSubsets(out, t, coeff, -2)
	})
	return out
}

// expandSubsets accumulates base * factor^|S| onto every subset S of vars.
// The empty subset goes to the offset. Term arity is bounded by the
// producer contract (degree reduction happens before a model reaches the
// engine), so the 2^k enumeration stays small.
func expandSubsets(out *Polynomial, vars Term, base, factor float64) {
	k := len(vars)
	for mask := 0; mask < 1<<k; mask++ {
		coeff := base
		var subset Term
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				coeff *= factor
				subset = append(subset, vars[i])
			}
		}
		if len(subset) == 0 {
			out.AddOffset(coeff)
			continue
		}
		// vars comes from a valid term, so subsets cannot fail validation
		_ = out.AddTerm(subset, coeff)
	}
}
