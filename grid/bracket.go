package grid

// Bracket locates the pair of adjacent samples of axis enclosing v and the
// fractional position of v within that pair. It returns the index of the
// lower sample and the fraction assigned to the upper one:
//
//	axis[low] < v ≤ axis[low+1],  frac = (v − axis[low]) / (axis[low+1] − axis[low])
//
// A value equal to an interior sample therefore brackets from below with
// frac = 1, placing its whole contribution on that sample. Values at or
// below axis[0] clamp to (0, 0); values above the last sample clamp to
// (len(axis), 0), with len(axis) acting as the "above range" sentinel. In
// both clamped cases the zero fraction signals that the whole contribution
// belongs to the boundary sample.
//
// Precondition (unchecked): axis is non-empty and strictly increasing; use
// ValidateAxis where the input is untrusted. Complexity: O(log L).
func Bracket(axis []float64, v float64) (low int, frac float64) {
	high := len(axis) - 1

	// Clamp outside the sampled range before searching.
	if v <= axis[0] {
		return 0, 0
	}
	if v > axis[high] {
		return len(axis), 0
	}

	// Binary search until low and high are adjacent.
	for high-low > 1 {
		mid := low + (high-low)/2
		if axis[mid] < v {
			low = mid
		} else {
			high = mid
		}
	}

	return low, (v - axis[low]) / (axis[high] - axis[low])
}
