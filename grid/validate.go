package grid

import "math"

// ValidateShape reports whether dims describes a usable lattice shape.
// Returns ErrEmptyShape for a shape with no dimensions and ErrBadExtent
// for any extent < 1. Complexity: O(N).
func ValidateShape(dims []int) error {
	if len(dims) == 0 {
		return ErrEmptyShape
	}
	for _, d := range dims {
		if d < 1 {
			return ErrBadExtent
		}
	}

	return nil
}

// ValidateAxis reports whether axis is a usable sample sequence: non-empty,
// finite, and strictly increasing. These are the unchecked preconditions of
// Bracket, offered as an explicit check for untrusted input.
// Complexity: O(L).
func ValidateAxis(axis []float64) error {
	if len(axis) == 0 {
		return ErrEmptyAxis
	}
	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrAxisNotFinite
		}
		if i > 0 && axis[i-1] >= v {
			return ErrAxisNotSorted
		}
	}

	return nil
}
