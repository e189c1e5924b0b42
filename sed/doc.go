// Package sed computes integrated spectral energy distributions for
// particle populations on tabulated rectilinear property grids.
//
// What:
//
//   - Grid wraps the tabulated lattice: one ascending axis per property
//     dimension plus a dense spectra buffer (one spectrum per cell,
//     wavelength fastest).
//   - Particles is a struct-of-arrays particle set: one property array per
//     dimension plus a mass array.
//   - ComputeWeights deposits every particle's mass onto the lattice by
//     multilinear interpolation: each particle spreads across the 2^N
//     corners of its enclosing hyper-cell, weighted by per-axis fractional
//     distance, clamped at grid boundaries.
//   - Integrate reduces the weighted lattice against the tabulated spectra
//     into one integrated Spectrum, attenuated by (1 − fesc).
//
// Why:
//
//   - Galaxy synthesis: integrated SEDs of star-particle populations on
//     age/metallicity (or higher-rank) SPS grids.
//   - Any tabulated-model reduction: deposit samples onto a lookup lattice,
//     then collapse against per-cell templates.
//
// Invariants:
//
//   - Partition of unity: a particle strictly inside every axis range
//     deposits weights summing to exactly its mass.
//   - Edge clamping: a particle at or beyond an axis boundary deposits its
//     whole mass on the boundary cell; no out-of-range lattice access.
//   - Additivity: deposition is purely accumulative, so particle subsets
//     may be processed in any order or split, and lattices summed.
//
// Complexity:
//
//   - ComputeWeights: O(npart × (N·log L + 2^N)).
//   - Integrate: ComputeWeights + O(populated_cells × nlam).
//
// Options:
//
//   - WithWorkers(n): deposit particle ranges on n goroutines, each into a
//     private lattice, merged element-wise afterwards. Deterministic for a
//     given n (merge order is worker order, never scheduling order);
//     summation order differs from the serial kernel only at round-off.
//
// Errors:
//
//   - ErrNoDimensions, ErrNoParticles, ErrNoWavelengths: empty inputs,
//     rejected before any allocation.
//   - ErrEscapeFraction: fesc outside [0,1].
//   - Grid.Validate / Particles.Validate surface structural mismatches
//     (ErrDimensionMismatch, ErrLengthMismatch, ErrSpectraLength, and the
//     grid package's axis errors) for callers with untrusted input; the
//     hot paths treat those as documented preconditions.
//
// See sed/example_test.go for an end-to-end walkthrough.
package sed
