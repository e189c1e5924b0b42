package grid_test

import (
	"testing"

	"github.com/katalvlaran/sedgrid/grid"
	"github.com/stretchr/testify/assert"
)

// TestBracket_Interior verifies the interior search and fraction on a
// non-uniform axis.
func TestBracket_Interior(t *testing.T) {
	axis := []float64{0, 1, 4, 10}

	low, frac := grid.Bracket(axis, 2.5)
	assert.Equal(t, 1, low, "2.5 lies in [1,4)")
	assert.InDelta(t, 0.5, frac, 1e-15, "2.5 is halfway through [1,4)")

	low, frac = grid.Bracket(axis, 7.0)
	assert.Equal(t, 2, low, "7 lies in [4,10)")
	assert.InDelta(t, 0.5, frac, 1e-15)
}

// TestBracket_WorkedExample pins the two-sample reference case: value 2.5
// on axis [0,10] sits a quarter of the way up.
func TestBracket_WorkedExample(t *testing.T) {
	low, frac := grid.Bracket([]float64{0, 10}, 2.5)
	assert.Equal(t, 0, low)
	assert.InDelta(t, 0.25, frac, 1e-15)
}

// TestBracket_LowerClamp checks values at or below the first sample clamp
// to (0, 0).
func TestBracket_LowerClamp(t *testing.T) {
	axis := []float64{1, 2, 3}

	for _, v := range []float64{1.0, 0.5, -100} {
		low, frac := grid.Bracket(axis, v)
		assert.Equal(t, 0, low, "v=%v must clamp to the lower edge", v)
		assert.Zero(t, frac, "clamped fraction must be zero")
	}
}

// TestBracket_UpperClamp checks values above the last sample return the
// len(axis) sentinel with zero fraction.
func TestBracket_UpperClamp(t *testing.T) {
	axis := []float64{1, 2, 3}

	low, frac := grid.Bracket(axis, 3.5)
	assert.Equal(t, len(axis), low, "above-range sentinel is len(axis)")
	assert.Zero(t, frac)
}

// TestBracket_LastSampleIsInterior confirms the last sample itself still
// brackets below: axis[high] uses low = len-2, frac = 1.
func TestBracket_LastSampleIsInterior(t *testing.T) {
	axis := []float64{0, 5, 10}

	low, frac := grid.Bracket(axis, 10)
	assert.Equal(t, 1, low, "v equal to the last sample brackets into the top interval")
	assert.InDelta(t, 1.0, frac, 1e-15)
}

// TestBracket_SampleHit verifies a value equal to an interior sample
// brackets from below with fraction 1, keeping its whole contribution on
// that sample.
func TestBracket_SampleHit(t *testing.T) {
	axis := []float64{0, 1, 2, 3, 4}

	low, frac := grid.Bracket(axis, 2)
	assert.Equal(t, 1, low)
	assert.InDelta(t, 1.0, frac, 1e-15)
}

// TestBracket_LongAxisConsistency sweeps a dense axis and asserts the
// bracketing invariant axis[low] ≤ v < axis[low+1] everywhere interior.
func TestBracket_LongAxisConsistency(t *testing.T) {
	axis := make([]float64, 100)
	for i := range axis {
		axis[i] = float64(i) * 0.7
	}

	for v := axis[0] + 0.01; v < axis[len(axis)-1]; v += 0.31 {
		low, frac := grid.Bracket(axis, v)
		assert.GreaterOrEqual(t, v, axis[low], "v=%v", v)
		assert.Less(t, v, axis[low+1], "v=%v", v)
		assert.GreaterOrEqual(t, frac, 0.0)
		assert.Less(t, frac, 1.0)
	}
}
