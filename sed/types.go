// Package sed core types: the tabulated Grid, the Particles set, and
// their structural validators. The hot paths (ComputeWeights, Integrate)
// never call the validators; they exist for callers ingesting untrusted
// buffers, mirroring the unchecked-precondition contract of package grid.
package sed

import (
	"github.com/katalvlaran/sedgrid/grid"
)

// Grid is a tabulated rectilinear property lattice. Axes[d] holds the
// ascending sample positions of dimension d and must have length Shape[d].
// Spectra is the dense per-cell spectral table of length Size()×NLam,
// wavelength varying fastest. A Grid is read-only for this package; it is
// never mutated and may be shared across concurrent invocations.
type Grid struct {
	Axes    [][]float64
	Shape   []int
	Spectra []float64
	NLam    int
}

// NDim returns the number of property dimensions. Complexity: O(1).
func (g *Grid) NDim() int { return len(g.Shape) }

// Size returns the number of lattice cells (wavelength axis excluded).
// Complexity: O(N).
func (g *Grid) Size() int { return grid.Size(g.Shape) }

// Validate checks the structural consistency the kernel otherwise assumes:
// a usable shape, one strictly increasing axis of matching length per
// dimension, a positive wavelength count, and a spectra buffer of exactly
// Size()×NLam entries. Complexity: O(N + Σ len(axis)).
func (g *Grid) Validate() error {
	if err := grid.ValidateShape(g.Shape); err != nil {
		return err
	}
	if len(g.Axes) != g.NDim() {
		return ErrDimensionMismatch
	}
	for dim, axis := range g.Axes {
		if err := grid.ValidateAxis(axis); err != nil {
			return err
		}
		if len(axis) != g.Shape[dim] {
			return ErrLengthMismatch
		}
	}
	if g.NLam < 1 {
		return ErrNoWavelengths
	}
	if len(g.Spectra) != g.Size()*g.NLam {
		return ErrSpectraLength
	}

	return nil
}

// SpectrumAt returns a copy of the tabulated spectrum of a single lattice
// cell. One coordinate per grid dimension is required; each must lie in
// [0, Shape[d]). Complexity: O(N + nlam).
func (g *Grid) SpectrumAt(coords ...int) (*Spectrum, error) {
	if len(coords) != g.NDim() {
		return nil, ErrDimensionMismatch
	}
	for dim, c := range coords {
		if c < 0 || c >= g.Shape[dim] {
			return nil, ErrCoordOutOfRange
		}
	}
	row := grid.FlatIndex(coords, g.Shape) * g.NLam
	lnu := make([]float64, g.NLam)
	copy(lnu, g.Spectra[row:row+g.NLam])

	return &Spectrum{Lnu: lnu}, nil
}

// Particles is a struct-of-arrays particle set. Props[d][p] is particle
// p's value on property dimension d, in the same dimension order as the
// grid's axes. Masses[p] is its scalar mass. Particles are independent and
// order-irrelevant: deposition is purely additive.
type Particles struct {
	Props  [][]float64
	Masses []float64
}

// Len returns the number of particles. Complexity: O(1).
func (p *Particles) Len() int { return len(p.Masses) }

// Validate checks structural consistency against a grid of ndim
// dimensions: one property array per dimension, every array as long as
// the mass array. Complexity: O(N).
func (p *Particles) Validate(ndim int) error {
	if len(p.Props) != ndim {
		return ErrDimensionMismatch
	}
	for _, prop := range p.Props {
		if len(prop) != p.Len() {
			return ErrLengthMismatch
		}
	}

	return nil
}

// checkCounts enforces the fail-fast argument contract shared by
// ComputeWeights and Integrate: every count must be positive. Runs before
// any allocation so a failed call produces no partial results.
func checkCounts(g *Grid, parts *Particles) error {
	if g.NDim() == 0 {
		return ErrNoDimensions
	}
	if parts.Len() == 0 {
		return ErrNoParticles
	}

	return nil
}
