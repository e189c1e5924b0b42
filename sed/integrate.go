package sed

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sedgrid/grid"
)

// Integrate — integrated SED of a particle population
//
// Description:
//
//	Computes the single integrated spectrum of a particle set on a
//	tabulated grid: deposits every particle's mass onto the lattice by
//	multilinear interpolation (ComputeWeights), then reduces the weighted
//	lattice against the per-cell spectra, attenuating every contribution
//	uniformly by (1 − fesc).
//
// Algorithm Outline:
//  1. Fail fast on empty inputs and on fesc outside [0,1] — before any
//     allocation, so a failed call produces no partial results.
//  2. ComputeWeights over all particles (serial, or per-worker lattices
//     with WithWorkers).
//  3. For every lattice cell with weight > 0: unravel its address to grid
//     coordinates, re-flatten under the spectra shape (grid shape plus the
//     trailing wavelength axis) to find the cell's spectrum row, and add
//     weight × (1−fesc) × row into the output.
//
// Complexity:
//
//	Time   = O(npart × (N·log L + 2^N) + populated_cells × nlam)
//	Memory = O(Size() + nlam)
//
// Errors:
//   - ErrNoDimensions, ErrNoParticles, ErrNoWavelengths — empty inputs.
//   - ErrEscapeFraction — fesc is NaN or outside [0,1].
//
// Integrate is a pure function of its inputs: no state is retained and
// independent invocations may run concurrently on shared inputs.
func Integrate(g *Grid, parts *Particles, fesc float64, opts ...Option) (*Spectrum, error) {
	if err := checkCounts(g, parts); err != nil {
		return nil, err
	}
	if g.NLam < 1 {
		return nil, ErrNoWavelengths
	}
	if math.IsNaN(fesc) || fesc < 0 || fesc > 1 {
		return nil, ErrEscapeFraction
	}

	weights, err := ComputeWeights(g, parts, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float64, g.NLam)
	accumulate(g, weights, fesc, out)

	return &Spectrum{Lnu: out}, nil
}

// accumulate reduces the weight lattice against the tabulated spectra into
// out. Cells with weight ≤ 0 contribute nothing: zero means untouched, and
// negative cannot arise from deposition.
func accumulate(g *Grid, weights []float64, fesc float64, out []float64) {
	ndim := g.NDim()
	scale := 1 - fesc

	// Spectra shape = grid shape plus the trailing wavelength axis; the
	// spectrum row of a cell is its coordinate with wavelength 0.
	rowShape := make([]int, ndim+1)
	copy(rowShape, g.Shape)
	rowShape[ndim] = g.NLam
	coords := make([]int, ndim+1)

	for cell, weight := range weights {
		if weight <= 0 {
			continue
		}
		grid.UnravelInto(coords[:ndim], cell, g.Shape)
		coords[ndim] = 0
		row := grid.FlatIndex(coords, rowShape)
		floats.AddScaled(out, weight*scale, g.Spectra[row:row+g.NLam])
	}
}
