package sed_test

import (
	"fmt"

	"github.com/katalvlaran/sedgrid/sed"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 1D property grid with two samples at 0 and 10, tabulating one
//	wavelength element per cell: spectra {1} and {3}. One particle of
//	mass 4 sits at 2.5, a quarter of the way up the interval, and nothing
//	escapes (fesc = 0).
//
// Deposition:
//
//	cell0 ← 4 × 0.75 = 3,  cell1 ← 4 × 0.25 = 1
//
// Reduction:
//
//	3×1.0 + 1×3.0 = 6.0
//
// Complexity: O(npart × (N·log L + 2^N) + cells × nlam)
func ExampleIntegrate() {
	g := &sed.Grid{
		Axes:    [][]float64{{0, 10}},
		Shape:   []int{2},
		Spectra: []float64{1, 3},
		NLam:    1,
	}
	parts := &sed.Particles{
		Props:  [][]float64{{2.5}},
		Masses: []float64{4},
	}

	spec, err := sed.Integrate(g, parts, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("integrated: %v\n", spec.Lnu)
	// Output:
	// integrated: [6]
}

// ExampleGrid_SpectrumAt demonstrates reading one cell's tabulated
// spectrum and combining spectra arithmetically.
func ExampleGrid_SpectrumAt() {
	g := &sed.Grid{
		Axes:    [][]float64{{0, 10}},
		Shape:   []int{2},
		Spectra: []float64{1, 3},
		NLam:    1,
	}

	a, _ := g.SpectrumAt(0)
	b, _ := g.SpectrumAt(1)
	_ = a.Add(b) // same grid, same wavelength count
	a.Scale(2)
	fmt.Printf("combined: %v sum=%v\n", a.Lnu, a.Sum())
	// Output:
	// combined: [8] sum=8
}
