package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/quality"
)

// TestCombinedError_RequiresPrototypes verifies that edge weights need
// prototype-space geometry even when distances are precomputed.
func TestCombinedError_RequiresPrototypes(t *testing.T) {
	d := mat.NewDense(1, 4, []float64{0, 1, 2, 3})

	_, err := quality.CombinedError(chainTopology(4), quality.Inputs{Distances: d})
	assert.ErrorIs(t, err, quality.ErrMissingInput)
}

// TestCombinedError_SingleUnitMap verifies that a one-unit map fails with
// ErrTooFewUnits: the BMU-to-BMU path term needs a second unit.
func TestCombinedError_SingleUnitMap(t *testing.T) {
	topo := mat.NewDense(1, 1, []float64{0})
	d := mat.NewDense(2, 1, []float64{0.5, 1.5})
	p := mat.NewDense(1, 1, []float64{1})

	_, err := quality.CombinedError(topo, quality.Inputs{Distances: d, Prototypes: p})
	assert.ErrorIs(t, err, quality.ErrTooFewUnits)
}

// TestCombinedError_AdjacentBMUs covers the direct-edge branch: on a 1-D
// chain quantizing itself, every sample sits on its first BMU and its second
// BMU is the adjacent unit, so each sample contributes exactly the
// prototype-space edge weight 1.
func TestCombinedError_AdjacentBMUs(t *testing.T) {
	x := line(4)

	ce, err := quality.CombinedError(chainTopology(4), quality.Inputs{
		Samples:    x,
		Prototypes: x,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ce, 1e-12)
}

// TestCombinedError_ShortestPathBMUs covers the graph branch: a crafted
// distance row makes the BMU pair (0,3) on a 4-unit chain, so the path term
// must route 0→1→2→3 through adjacent units, summing the unit edge weights
// to 3.
func TestCombinedError_ShortestPathBMUs(t *testing.T) {
	d := mat.NewDense(1, 4, []float64{0, 9, 9, 1})

	ce, err := quality.CombinedError(chainTopology(4), quality.Inputs{
		Distances:  d,
		Prototypes: line(4),
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, ce, 1e-12, "0 to first BMU plus the 0→1→2→3 path")
}

// TestCombinedError_TieBreak verifies the deterministic lowest-index BMU
// tie-break: sample 1 is equidistant to units 0 and 2, so its second BMU is
// unit 0 and the pair stays adjacent.
func TestCombinedError_TieBreak(t *testing.T) {
	x := mat.NewDense(1, 1, []float64{1}) // exactly between prototypes 0 and 2

	ce, err := quality.CombinedError(chainTopology(3), quality.Inputs{
		Samples:    x,
		Prototypes: mat.NewDense(3, 1, []float64{0, 1, 2}),
	})
	require.NoError(t, err)

	// BMU1 = 1 (distance 0); BMU2 ties between 0 and 2 at distance 1 and
	// must pick 0. Edge 1–0 weighs 1, so the error is 0 + 1.
	assert.InDelta(t, 1.0, ce, 1e-12)
}
