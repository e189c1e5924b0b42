// Package sedgrid computes integrated spectral energy distributions (SEDs)
// for particle populations on tabulated rectilinear property grids.
//
// 🚀 What is sedgrid?
//
//	A deterministic numerical kernel that brings together:
//		• Flat/N-dimensional index arithmetic over rectilinear lattices
//		• Per-axis bracket search with clamped edge policy
//		• Multilinear (2^N-corner) mass deposition onto a weight lattice
//		• Weighted reduction against per-cell tabulated spectra
//		• Optional per-worker parallel deposition with an exact merge
//
// ✨ Why choose sedgrid?
//
//   - Deterministic – a pure function of its inputs, no global state
//   - Predictable cost – O(npart·(N·log L + 2^N) + cells·nlam), documented per API
//   - Pure Go – no cgo; numerics via gonum, tests via testify
//   - Boundary-safe – clamped edges, no out-of-range lattice access
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/ — lattice geometry: flat-index encoding and axis bracket search
//	sed/  — the kernel: weight deposition, spectral reduction, driver
//
// Quick sketch (one dimension, axis [0,10], particle at 2.5 with mass 4):
//
//	cell0───────p───────────────cell1
//	 75%  ◄─── 2.5/10 ───►  25%
//
//	deposits weight 3 on cell0 and 1 on cell1, then reduces both cells'
//	tabulated spectra into one integrated spectrum.
//
// Dive into sed/example_test.go for end-to-end usage.
//
//	go get github.com/katalvlaran/sedgrid
package sedgrid
