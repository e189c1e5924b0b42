package grid

// FlatIndex maps an N-dimensional coordinate to its flat address under the
// last-dimension-fastest mixed-radix scheme:
//
//	index = Σ coords[i] × Π(dims[j] for j > i)
//
// coords and dims must have equal length; every coords[i] must lie in
// [0, dims[i]). No bounds checking is performed — callers guarantee valid
// input. Complexity: O(N), zero allocations.
func FlatIndex(coords, dims []int) int {
	index, stride := 0, 1
	for i := len(dims) - 1; i >= 0; i-- {
		index += stride * coords[i]
		stride *= dims[i]
	}

	return index
}

// UnravelIndex maps a flat address back to its N-dimensional coordinate,
// allocating the result. It is the exact inverse of FlatIndex for every
// valid coordinate under the same shape. Complexity: O(N).
func UnravelIndex(flat int, dims []int) []int {
	coords := make([]int, len(dims))
	UnravelInto(coords, flat, dims)

	return coords
}

// UnravelInto is UnravelIndex without the allocation: it writes the
// coordinate into dst[:len(dims)]. The last dimension varies fastest, so
// extents are peeled off back to front by successive modulo/divide.
// dst must have at least len(dims) entries. Complexity: O(N).
func UnravelInto(dst []int, flat int, dims []int) {
	for i := len(dims) - 1; i >= 0; i-- {
		dst[i] = flat % dims[i]
		flat /= dims[i]
	}
}

// Size returns the number of lattice cells, the product of all extents.
// An empty shape yields 1 (the empty product). Complexity: O(N).
func Size(dims []int) int {
	size := 1
	for _, d := range dims {
		size *= d
	}

	return size
}
