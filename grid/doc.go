// Package grid provides the geometry primitives for rectilinear
// N-dimensional property lattices: flat-index arithmetic and per-axis
// bracket search.
//
// What:
//
//   - FlatIndex / UnravelIndex encode and decode lattice coordinates under
//     a last-dimension-fastest mixed-radix scheme; they are exact inverses
//     for every valid coordinate.
//   - Bracket locates, along one axis, the pair of adjacent samples
//     enclosing a query value and the fractional position within it,
//     clamping values at or beyond the axis range to the boundary.
//   - ValidateShape / ValidateAxis check the structural preconditions the
//     hot paths deliberately leave unchecked.
//
// Why:
//
//   - SED synthesis: address cells of a tabulated spectral grid.
//   - Multilinear interpolation: bracket + fraction per dimension drive
//     the 2^N corner-weight expansion.
//   - Any dense N-dimensional accumulation that needs cheap, exact
//     flat↔multi index conversion.
//
// Complexity:
//
//   - FlatIndex / UnravelIndex / UnravelInto: O(N), zero allocations
//     (UnravelIndex allocates its result slice).
//   - Bracket: O(log L) binary search, L = axis length.
//   - ValidateShape / ValidateAxis: O(N) / O(L).
//
// Conventions:
//
//   - Bracket returns low == len(axis) as an "above range" sentinel; the
//     fraction is 0 in both clamped cases.
//   - Index functions perform no bounds checking: coordinates must lie in
//     [0, dims[i]) and dims must be positive. Violations are undefined
//     behavior, not errors.
//
// Errors:
//
//   - ErrEmptyShape: shape has no dimensions.
//   - ErrBadExtent: a dimension extent is < 1.
//   - ErrEmptyAxis: an axis has no samples.
//   - ErrAxisNotSorted: axis samples are not strictly increasing.
//   - ErrAxisNotFinite: an axis sample is NaN or ±Inf.
package grid
