package quality

import (
	"math"

	"github.com/topogauge/topogauge/mapgraph"
)

// TopographicFunctionOptions configures TopographicFunction.
type TopographicFunctionOptions struct {
	// GridDim is the dimensionality of the map grid, used only in the
	// n·(n−3^GridDim) normalization constant. Default 2.
	GridDim int
}

// TopographicFunctionOption is a functional option for configuring
// TopographicFunction.
type TopographicFunctionOption func(*TopographicFunctionOptions)

// WithGridDim overrides the grid dimensionality used by the normalization
// constant. Must be positive; TopographicFunction rejects non-positive
// values with ErrBadGridDim.
func WithGridDim(dim int) TopographicFunctionOption {
	return func(o *TopographicFunctionOptions) {
		o.GridDim = dim
	}
}

// TopographicFunction returns Villmann's topographic function evaluated at
// each normalized distance threshold in ks: the number of unit pairs that
// are connected through some sample's BMU pair yet lie farther apart on the
// map than k·maxDist, summed over all ordered unit pairs and divided by
// nUnits·(nUnits−3^gridDim). One value per requested threshold.
//
// df supplies the map distance between two units (a precomputed matrix fits
// via MatrixDistance); maxDist is the maximum distance on the map. The
// normalization constant approximates the boundary-unit count of a square
// 2-D grid; for non-square or higher-dimensional maps it is a known
// limitation of this form (and goes negative below 3^gridDim units), not a
// quantity this package generalizes.
//
// Inputs: Distances, or Samples and Prototypes. The map needs at least two
// units (ErrTooFewUnits otherwise: a second BMU cannot exist).
//
// Complexity: O(nUnits²·len(ks)) after the BMU pass.
func TopographicFunction(ks []float64, df DistanceFunc, maxDist float64, in Inputs, opts ...TopographicFunctionOption) ([]float64, error) {
	cfg := TopographicFunctionOptions{GridDim: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.GridDim < 1 {
		return nil, ErrBadGridDim
	}
	if df == nil {
		return nil, ErrNilDistanceFunc
	}
	if maxDist <= 0 {
		return nil, ErrNonPositiveMaxDistance
	}

	d, err := in.resolve()
	if err != nil {
		return nil, err
	}
	_, units := d.Dims()
	if units < 2 {
		return nil, ErrTooFewUnits
	}

	conn, err := mapgraph.Connectivity(units, TwoBestMatchingUnits(d))
	if err != nil {
		return nil, err
	}

	tf := make([]float64, len(ks))
	var c, cc, i int
	var nd float64
	for c = 0; c < units; c++ {
		for cc = 0; cc < units; cc++ {
			if conn.At(c, cc) != 1 {
				continue
			}
			nd = df(c, cc) / maxDist
			for i = range ks {
				if nd > ks[i] {
					tf[i]++
				}
			}
		}
	}

	norm := float64(units) * (float64(units) - math.Pow(3, float64(cfg.GridDim)))
	for i = range tf {
		tf[i] /= norm
	}

	return tf, nil
}
