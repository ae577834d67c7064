// Package reorder holds the drag-to-reorder decision logic: which row a
// drag is targeting, on which side, and the permutation produced when the
// drop is committed.
package reorder

// Session is the transient state of one drag gesture. The zero value is
// an idle session. A Session is owned by the goroutine delivering pointer
// events and is not safe for concurrent use.
type Session[T any] struct {
	source int
	target int
	side   Side

	hasSource bool
}

// Start begins a gesture on the row at index, abandoning any gesture that
// was still in flight.
func (s *Session[T]) Start(index int) {
	s.source = index
	s.hasSource = true
	s.clearTarget()
}

// UpdateTarget records the row under the pointer and which half of that
// row's own bounds the pointer is over. It does nothing before Start.
func (s *Session[T]) UpdateTarget(index int, pointerY, rowTop, rowHeight float64) {
	if !s.hasSource {
		return
	}
	s.SetTarget(index, Classify(pointerY, rowTop, rowHeight))
}

// SetTarget records an already classified target, e.g. the end-of-list
// sentinel which has no meaningful halves. It does nothing before Start or
// when side is SideNone.
func (s *Session[T]) SetTarget(index int, side Side) {
	if !s.hasSource || side == SideNone {
		return
	}
	s.target = index
	s.side = side
}

// Cancel ends the gesture without reordering.
func (s *Session[T]) Cancel() {
	s.source = 0
	s.hasSource = false
	s.clearTarget()
}

// Commit ends the gesture and returns the reordered list. When the
// gesture never acquired a target, or was dropped onto its own row, list
// is returned as is.
func (s *Session[T]) Commit(list []T) []T {
	defer s.Cancel()

	target, side, ok := s.Target()
	if !s.hasSource || !ok || s.source == target {
		return list
	}
	return Reorder(list, s.source, target, side)
}

// Active reports whether a gesture is in progress.
func (s *Session[T]) Active() bool {
	return s.hasSource
}

// Source returns the index of the dragged row.
func (s *Session[T]) Source() (int, bool) {
	return s.source, s.hasSource
}

// Target returns the row under the pointer and the side of it. ok is
// false until the first UpdateTarget after Start.
func (s *Session[T]) Target() (index int, side Side, ok bool) {
	if s.side == SideNone {
		return 0, SideNone, false
	}
	return s.target, s.side, true
}

func (s *Session[T]) clearTarget() {
	s.target = 0
	s.side = SideNone
}
