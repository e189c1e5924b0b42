package grid

import "errors"

var (
	// ErrEmptyShape indicates a lattice shape with no dimensions.
	ErrEmptyShape = errors.New("grid: shape must have at least one dimension")
	// ErrBadExtent indicates a dimension extent smaller than one.
	ErrBadExtent = errors.New("grid: every dimension extent must be >= 1")
	// ErrEmptyAxis indicates an axis with no samples.
	ErrEmptyAxis = errors.New("grid: axis must have at least one sample")
	// ErrAxisNotSorted indicates axis samples that are not strictly increasing.
	ErrAxisNotSorted = errors.New("grid: axis samples must be strictly increasing")
	// ErrAxisNotFinite indicates an axis sample that is NaN or infinite.
	ErrAxisNotFinite = errors.New("grid: axis samples must be finite")
)
