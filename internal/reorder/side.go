package reorder

// Side is the half of a target row the pointer is over.
type Side int

const (
	SideNone Side = iota
	SideAbove
	SideBelow
)

func (s Side) String() string {
	switch s {
	case SideAbove:
		return "above"
	case SideBelow:
		return "below"
	default:
		return "none"
	}
}

// ParseSide is the inverse of String. It reports false for anything other
// than "above" or "below".
func ParseSide(s string) (Side, bool) {
	switch s {
	case "above":
		return SideAbove, true
	case "below":
		return SideBelow, true
	}
	return SideNone, false
}

// Classify splits a row at its vertical midpoint. A pointer exactly on the
// midpoint is below.
func Classify(pointerY, rowTop, rowHeight float64) Side {
	if pointerY < rowTop+rowHeight/2 {
		return SideAbove
	}
	return SideBelow
}
