package sed

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sedgrid/grid"
)

// ComputeWeights — multilinear mass deposition
//
// Description:
//
//	Distributes every particle's mass onto the lattice cells surrounding
//	its position in property space. Along each dimension the particle's
//	value is bracketed between two adjacent axis samples; the 2^N
//	combinations of "low" and "high" sides form the corners of its
//	enclosing hyper-cell, and each corner receives
//	mass × Π(frac[d] or 1−frac[d]).
//
// Algorithm Outline:
//  1. Allocate a zeroed weight lattice of Size() cells.
//  2. Per particle: bracket all N dimensions (grid.Bracket), giving a
//     (low, frac) pair per dimension. An above-range value yields the
//     len(axis) sentinel, remapped here to the top cell with frac=0 so
//     the whole mass clamps onto the boundary.
//  3. Recurse over dimensions, branching low/high per dimension, carrying
//     the partial weight product; at depth N add it to the corner's cell.
//     A high branch with frac=0 landing on a boundary coordinate is
//     dropped entirely: it carries no mass and, at the upper edge, would
//     address a cell outside the lattice.
//  4. With WithWorkers(n), n>1: split particles into contiguous ranges,
//     deposit each range into a private lattice on its own goroutine,
//     then merge the partial lattices element-wise in worker order.
//
// Properties:
//
//   - Partition of unity: Π-sum over all 2^N corners is exactly 1 for an
//     interior particle, so total deposited mass equals particle mass.
//   - Additivity: lattices of disjoint particle subsets sum to the lattice
//     of the union.
//
// Complexity:
//
//	Time   = O(npart × (N·log L + 2^N))
//	Memory = O(Size()) (+ one lattice per extra worker)
//
// Errors:
//   - ErrNoDimensions — grid has no property dimensions.
//   - ErrNoParticles  — particle set is empty.
//
// Preconditions (unchecked, see Grid.Validate / Particles.Validate):
// axes ascending and matching Shape, one property array per dimension,
// property arrays as long as the mass array.
func ComputeWeights(g *Grid, parts *Particles, opts ...Option) ([]float64, error) {
	if err := checkCounts(g, parts); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if o.workers > 1 && parts.Len() >= minParallelParticles {
		return parallelWeights(g, parts, o.workers), nil
	}

	weights := make([]float64, g.Size())
	depositRange(g, parts, 0, parts.Len(), weights)

	return weights, nil
}

// depositor carries the per-range scratch state of the corner expansion:
// one bracket pair per dimension plus the corner coordinate being built.
// The low indices stay immutable during a particle's recursion; only
// corner is rewritten as the expansion walks the hyper-cell.
type depositor struct {
	g       *Grid
	weights []float64
	lows    []int
	fracs   []float64
	corner  []int
}

// depositRange deposits particles [lo, hi) of parts into weights,
// allocating the scratch buffers once for the whole range.
func depositRange(g *Grid, parts *Particles, lo, hi int, weights []float64) {
	ndim := g.NDim()
	d := depositor{
		g:       g,
		weights: weights,
		lows:    make([]int, ndim),
		fracs:   make([]float64, ndim),
		corner:  make([]int, ndim),
	}

	for p := lo; p < hi; p++ {
		// Bracket every dimension for this particle.
		for dim := 0; dim < ndim; dim++ {
			low, frac := grid.Bracket(g.Axes[dim], parts.Props[dim][p])
			if low == g.Shape[dim] {
				// Above-range sentinel: clamp onto the top cell. frac is
				// already 0, so the high-side corner carries no mass and is
				// dropped at the boundary by expand.
				low = g.Shape[dim] - 1
			}
			d.lows[dim] = low
			d.fracs[dim] = frac
		}
		d.expand(parts.Masses[p], 0)
	}
}

// expand enumerates the 2^N corners of the bracketed hyper-cell by binary
// recursion: depth = dimension, branch = low/high side. partial is
// mass × the weight factors of all dimensions above dim.
func (d *depositor) expand(partial float64, dim int) {
	if dim == len(d.corner) {
		d.weights[grid.FlatIndex(d.corner, d.g.Shape)] += partial

		return
	}

	low, frac := d.lows[dim], d.fracs[dim]

	// Low side: factor 1−frac.
	d.corner[dim] = low
	d.expand(partial*(1-frac), dim+1)

	// High side: factor frac. A zero-fraction corner on the boundary
	// (clamped particle) is skipped entirely — it carries no mass and at
	// the upper edge lies outside the lattice. Zero-fraction interior
	// corners still deposit (a harmless zero).
	high := low + 1
	if frac == 0 && (high == 0 || high == d.g.Shape[dim]) {
		return
	}
	d.corner[dim] = high
	d.expand(partial*frac, dim+1)
}

// parallelWeights is the WithWorkers(n) deposition path: contiguous
// particle ranges on private lattices, merged in worker order.
func parallelWeights(g *Grid, parts *Particles, workers int) []float64 {
	n := parts.Len()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		partials[w] = make([]float64, g.Size())
		lo := w * chunk
		hi := min(lo+chunk, n)
		go func(lo, hi int, dst []float64) {
			defer wg.Done()
			depositRange(g, parts, lo, hi, dst)
		}(lo, hi, partials[w])
	}
	wg.Wait()

	// Merge element-wise; worker order keeps the merge deterministic.
	total := partials[0]
	for _, partial := range partials[1:] {
		floats.Add(total, partial)
	}

	return total
}
