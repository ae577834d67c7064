package reorder

// Reorder moves list[source] to the slot the user dropped it on: above or
// below list[target]. target may equal len(list), the end-of-list
// sentinel, which always means "move to end".
//
// The input is never mutated. Indices outside the list (for example after
// the list shrank mid-gesture) yield an unchanged copy.
func Reorder[T any](list []T, source, target int, side Side) []T {
	out := make([]T, len(list))
	copy(out, list)

	n := len(list)
	if source < 0 || source >= n || target < 0 || target > n || source == target {
		return out
	}
	if side != SideAbove && side != SideBelow {
		return out
	}

	dropIndex := target
	if side == SideBelow {
		dropIndex = target + 1
	}
	if dropIndex > n {
		dropIndex = n
	}

	moved := out[source]
	out = append(out[:source], out[source+1:]...)

	// Everything after source shifted left by one, including the drop
	// point when moving forward.
	at := dropIndex
	if target > source {
		at = dropIndex - 1
	}

	out = append(out, moved)
	copy(out[at+1:], out[at:])
	out[at] = moved
	return out
}
