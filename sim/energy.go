package sim

// evaluate computes the objective value of model at state by full
// summation: offset + sum over terms of coeff * product of the term's
// variable values. O(total term arity).
func evaluate(model *Polynomial, state State) float64 {
	total := model.Offset()
	model.Each(func(t Term, coeff float64) {
		prod := coeff
		for _, v := range t {
			prod *= float64(state[v])
		}
		total += prod
	})
	return total
}

// EvaluateSpin computes the energy of a spin-domain model at a {-1, +1}
// assignment.
func EvaluateSpin(model *Polynomial, state State) float64 {
	return evaluate(model, state)
}

// EvaluateBoolean computes the objective value of a boolean-domain model
// at a {0, 1} assignment.
func EvaluateBoolean(model *Polynomial, state State) float64 {
	return evaluate(model, state)
}
