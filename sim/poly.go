package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Term is an unordered collection of distinct variable labels. Two terms
// that differ only in listed order address the same entry in a Polynomial.
type Term []string

// WeightedTerm pairs a term with its coefficient. A plain slice of
// WeightedTerms is the interchange form accepted by the arithmetic methods
// and by external model producers.
type WeightedTerm struct {
	Vars  Term    `yaml:"vars"`
	Coeff float64 `yaml:"coeff"`
}

// keySep joins sorted labels into a canonical map key. Labels must not
// contain the unit separator byte.
const keySep = "\x1f"

// entry stores one canonicalized term. vars is sorted and never aliased to
// caller memory.
type entry struct {
	vars  []string
	coeff float64
}

// Polynomial is a sparse multilinear energy model: a mapping from canonical
// terms to nonzero coefficients, plus a scalar offset. Every mutation goes
// through SetTerm/AddTerm so the container invariants hold at all times:
// no stored term has a zero coefficient, term identity is independent of
// label order, and no term carries a duplicate label.
type Polynomial struct {
	terms  map[string]entry
	offset float64
}

// NewPolynomial returns an empty model.
func NewPolynomial() *Polynomial {
	return &Polynomial{terms: make(map[string]entry)}
}

// NewPolynomialFromTerms builds a model from a plain unordered collection
// of (term, coefficient) pairs, accumulating duplicates and pruning zeros.
func NewPolynomialFromTerms(pairs []WeightedTerm) (*Polynomial, error) {
	p := NewPolynomial()
	for _, wt := range pairs {
		if err := p.AddTerm(wt.Vars, wt.Coeff); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// canonicalTerm validates a term and returns its sorted label slice and
// canonical key. The input slice is not modified.
func canonicalTerm(t Term) ([]string, string, error) {
	if len(t) == 0 {
		return nil, "", fmt.Errorf("%w: term is empty", ErrInvalidTerm)
	}
	vars := make([]string, len(t))
	copy(vars, t)
	sort.Strings(vars)
	for i := 1; i < len(vars); i++ {
		if vars[i] == vars[i-1] {
			return nil, "", fmt.Errorf("%w: duplicate label %q", ErrInvalidTerm, vars[i])
		}
	}
	return vars, strings.Join(vars, keySep), nil
}

// SetTerm stores coeff under the canonical identity of t, replacing any
// previous value. A zero coeff deletes the entry.
func (p *Polynomial) SetTerm(t Term, coeff float64) error {
	vars, key, err := canonicalTerm(t)
	if err != nil {
		return err
	}
	if coeff == 0 {
		delete(p.terms, key)
		return nil
	}
	p.terms[key] = entry{vars: vars, coeff: coeff}
	return nil
}

// AddTerm accumulates coeff onto the canonical identity of t, deleting the
// entry if the sum reaches zero.
func (p *Polynomial) AddTerm(t Term, coeff float64) error {
	vars, key, err := canonicalTerm(t)
	if err != nil {
		return err
	}
	sum := p.terms[key].coeff + coeff
	if sum == 0 {
		delete(p.terms, key)
		return nil
	}
	p.terms[key] = entry{vars: vars, coeff: sum}
	return nil
}

// Coefficient returns the stored coefficient for t under any label
// ordering, or zero if absent. Lookup never fails: a malformed term simply
// has no entry.
func (p *Polynomial) Coefficient(t Term) float64 {
	_, key, err := canonicalTerm(t)
	if err != nil {
		return 0
	}
	return p.terms[key].coeff
}

// Offset returns the scalar (variable-free) part of the model.
func (p *Polynomial) Offset() float64 { return p.offset }

// AddOffset accumulates c onto the scalar part of the model.
func (p *Polynomial) AddOffset(c float64) { p.offset += c }

// Len returns the number of stored terms, excluding the offset.
func (p *Polynomial) Len() int { return len(p.terms) }

// Each calls fn for every stored term. The Term passed to fn is a copy;
// mutating it does not affect the model. Iteration order is unspecified.
func (p *Polynomial) Each(fn func(t Term, coeff float64)) {
	for _, e := range p.terms {
		fn(append(Term(nil), e.vars...), e.coeff)
	}
}

// Terms returns the model as a plain slice of (term, coefficient) pairs in
// unspecified order. The returned slices are copies.
func (p *Polynomial) Terms() []WeightedTerm {
	out := make([]WeightedTerm, 0, len(p.terms))
	p.Each(func(t Term, c float64) {
		out = append(out, WeightedTerm{Vars: t, Coeff: c})
	})
	return out
}

// Variables returns the sorted set of labels appearing in any term.
func (p *Polynomial) Variables() []string {
	seen := make(map[string]bool)
	for _, e := range p.terms {
		for _, v := range e.vars {
			seen[v] = true
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Copy returns an independent copy of the model.
func (p *Polynomial) Copy() *Polynomial {
	q := &Polynomial{terms: make(map[string]entry, len(p.terms)), offset: p.offset}
	for k, e := range p.terms {
		q.terms[k] = entry{vars: append([]string(nil), e.vars...), coeff: e.coeff}
	}
	return q
}

// Add returns p + other as a new model. Both inputs are unchanged.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	q := p.Copy()
	for _, e := range other.terms {
		// canonical inputs cannot fail re-canonicalization
		_ = q.AddTerm(e.vars, e.coeff)
	}
	q.offset += other.offset
	return q
}

// Sub returns p - other as a new model.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	q := p.Copy()
	for _, e := range other.terms {
		_ = q.AddTerm(e.vars, -e.coeff)
	}
	q.offset -= other.offset
	return q
}

// AddTerms returns p plus a plain (term, coefficient) collection, behaving
// identically to Add on the equivalent model.
func (p *Polynomial) AddTerms(pairs []WeightedTerm) (*Polynomial, error) {
	q := p.Copy()
	for _, wt := range pairs {
		if err := q.AddTerm(wt.Vars, wt.Coeff); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// SubTerms returns p minus a plain (term, coefficient) collection.
func (p *Polynomial) SubTerms(pairs []WeightedTerm) (*Polynomial, error) {
	q := p.Copy()
	for _, wt := range pairs {
		if err := q.AddTerm(wt.Vars, -wt.Coeff); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Scale returns p with every coefficient and the offset multiplied by f.
// Scaling by zero yields the empty model.
func (p *Polynomial) Scale(f float64) *Polynomial {
	q := NewPolynomial()
	for _, e := range p.terms {
		_ = q.SetTerm(e.vars, e.coeff*f)
	}
	q.offset = p.offset * f
	return q
}

// Div returns p with every coefficient and the offset divided by f.
func (p *Polynomial) Div(f float64) (*Polynomial, error) {
	if f == 0 {
		return nil, fmt.Errorf("division of model by zero scalar")
	}
	return p.Scale(1 / f), nil
}

// String renders the model compactly for logging.
func (p *Polynomial) String() string {
	pairs := p.Terms()
	sort.Slice(pairs, func(i, j int) bool {
		return strings.Join(pairs[i].Vars, keySep) < strings.Join(pairs[j].Vars, keySep)
	})
	var b strings.Builder
	b.WriteString("Polynomial{")
	for i, wt := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %g", []string(wt.Vars), wt.Coeff)
	}
	if p.offset != 0 {
		if len(pairs) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "offset: %g", p.offset)
	}
	b.WriteString("}")
	return b.String()
}
