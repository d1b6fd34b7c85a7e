package sim

// History is a bounded FIFO of prior state snapshots, owned by one
// Simulation. Capacity is fixed at construction; pushing at capacity
// evicts the oldest snapshot. A zero-capacity history drops every push.
type History struct {
	capacity int
	states   []State
}

// NewHistory returns a history retaining up to capacity snapshots.
// A negative capacity is treated as zero.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{capacity: capacity}
}

// Capacity returns the maximum number of retained snapshots.
func (h *History) Capacity() int { return h.capacity }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.states) }

// Push appends a snapshot, evicting the oldest if at capacity. The caller
// must hand over an already-independent copy.
func (h *History) Push(s State) {
	if h.capacity == 0 {
		return
	}
	h.states = append(h.states, s)
	if len(h.states) > h.capacity {
		h.states = h.states[1:]
	}
}

// Recent returns independent copies of the most recent n snapshots, oldest
// first. If n exceeds the retained count, all retained snapshots are
// returned; n <= 0 returns nil.
func (h *History) Recent(n int) []State {
	if n <= 0 {
		return nil
	}
	if n > len(h.states) {
		n = len(h.states)
	}
	out := make([]State, 0, n)
	for _, s := range h.states[len(h.states)-n:] {
		out = append(out, s.Clone())
	}
	return out
}

// Clear drops all retained snapshots.
func (h *History) Clear() {
	h.states = nil
}
