package sim

import "fmt"

// Field is the arity-1 specialization of Polynomial: a per-variable bias
// term for each label. It reuses the Polynomial container contract, so
// zero-pruning and copy-on-read behave identically.
type Field struct {
	poly *Polynomial
}

// NewField returns an empty bias field.
func NewField() *Field {
	return &Field{poly: NewPolynomial()}
}

// Set stores coeff as the bias on label, deleting the entry if coeff is
// zero.
func (f *Field) Set(label string, coeff float64) error {
	return f.poly.SetTerm(Term{label}, coeff)
}

// Add accumulates coeff onto the bias of label.
func (f *Field) Add(label string, coeff float64) error {
	return f.poly.AddTerm(Term{label}, coeff)
}

// Get returns the bias on label, or zero if absent.
func (f *Field) Get(label string) float64 {
	return f.poly.Coefficient(Term{label})
}

// Len returns the number of nonzero biases.
func (f *Field) Len() int { return f.poly.Len() }

// Polynomial returns the field as a model usable by the engine. The
// returned model is a copy.
func (f *Field) Polynomial() *Polynomial { return f.poly.Copy() }

// Coupling is the arity-2 specialization of Polynomial: a pairwise
// interaction between two distinct labels. Setting a coupling between a
// label and itself is a producer error.
type Coupling struct {
	poly *Polynomial
}

// NewCoupling returns an empty pairwise coupling.
func NewCoupling() *Coupling {
	return &Coupling{poly: NewPolynomial()}
}

// Set stores coeff as the coupling between a and b, in either listed
// order, deleting the entry if coeff is zero.
func (c *Coupling) Set(a, b string, coeff float64) error {
	if a == b {
		return fmt.Errorf("%w: coupling requires two distinct labels, got %q twice", ErrInvalidTerm, a)
	}
	return c.poly.SetTerm(Term{a, b}, coeff)
}

// Add accumulates coeff onto the coupling between a and b.
func (c *Coupling) Add(a, b string, coeff float64) error {
	if a == b {
		return fmt.Errorf("%w: coupling requires two distinct labels, got %q twice", ErrInvalidTerm, a)
	}
	return c.poly.AddTerm(Term{a, b}, coeff)
}

// Get returns the coupling between a and b under either ordering, or zero
// if absent.
func (c *Coupling) Get(a, b string) float64 {
	return c.poly.Coefficient(Term{a, b})
}

// Len returns the number of nonzero couplings.
func (c *Coupling) Len() int { return c.poly.Len() }

// Polynomial returns the coupling as a model usable by the engine. The
// returned model is a copy.
func (c *Coupling) Polynomial() *Polynomial { return c.poly.Copy() }
