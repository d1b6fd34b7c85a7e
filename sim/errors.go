package sim

import "errors"

// Validation failures are raised synchronously at the point of violation
// with no partial mutation. They indicate producer or caller bugs, not
// runtime conditions to recover from. Match with errors.Is.
var (
	// ErrInvalidTerm marks an empty term, a term with a duplicate label,
	// or equal labels in a pairwise Coupling.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrInvalidStateValue marks an assignment value outside {-1, +1}
	// (spin domain) or {0, 1} (boolean domain).
	ErrInvalidStateValue = errors.New("invalid state value")

	// ErrInvalidUpdateCount marks a negative sweep count.
	ErrInvalidUpdateCount = errors.New("invalid update count")

	// ErrInvalidScheduleEntry marks a negative temperature.
	ErrInvalidScheduleEntry = errors.New("invalid schedule entry")
)
