package sed

import "errors"

var (
	// ErrNoDimensions indicates a grid with no property dimensions.
	ErrNoDimensions = errors.New("sed: grid must have at least one dimension")
	// ErrNoParticles indicates an empty particle set.
	ErrNoParticles = errors.New("sed: particle set must be non-empty")
	// ErrNoWavelengths indicates a grid tabulating no wavelength elements.
	ErrNoWavelengths = errors.New("sed: grid must tabulate at least one wavelength")
	// ErrEscapeFraction indicates an escape fraction outside [0,1].
	ErrEscapeFraction = errors.New("sed: escape fraction must lie in [0,1]")
	// ErrDimensionMismatch indicates particle properties or coordinates not
	// covering every grid dimension.
	ErrDimensionMismatch = errors.New("sed: one property array per grid dimension is required")
	// ErrLengthMismatch indicates particle property arrays of differing lengths.
	ErrLengthMismatch = errors.New("sed: every property array must match the mass array length")
	// ErrSpectraLength indicates a spectra buffer inconsistent with the grid shape.
	ErrSpectraLength = errors.New("sed: spectra length must equal grid size × wavelength count")
	// ErrCoordOutOfRange indicates a lattice coordinate outside the grid shape.
	ErrCoordOutOfRange = errors.New("sed: lattice coordinate out of range")
	// ErrSpectrumLength indicates spectra with differing wavelength counts.
	ErrSpectrumLength = errors.New("sed: spectra must have equal wavelength counts")
)
