package sim

// IncidentTerm is one term touching a variable, as seen from the adjacency
// index: the term's full (sorted) label list and its coefficient.
type IncidentTerm struct {
	Vars  []string
	Coeff float64
}

// Adjacency maps each variable label to the terms that reference it.
// It is built once from a model and read-only afterward; if the source
// model mutates, the index is stale and must be rebuilt. Lookup of a
// variable's incident terms is O(local degree).
type Adjacency map[string][]IncidentTerm

// BuildAdjacency derives the per-variable incident-term index from model.
// Construction is O(total term arity). Every variable appearing in any
// term gets an entry, so the index also fixes the model's variable set.
func BuildAdjacency(model *Polynomial) Adjacency {
	adj := make(Adjacency)
	model.Each(func(t Term, coeff float64) {
		inc := IncidentTerm{Vars: t, Coeff: coeff}
		for _, v := range t {
			adj[v] = append(adj[v], inc)
		}
	})
	return adj
}

// Degree returns the number of terms incident to label.
func (a Adjacency) Degree(label string) int { return len(a[label]) }
