package quality

import (
	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/pairwise"
)

// CMeasureOptions configures CMeasure.
type CMeasureOptions struct {
	// PairNormalization divides the sum by n(n−1). The default is off: the
	// established scale of this score is the raw half-sum, and downstream
	// comparisons may depend on it, so the default never changes silently.
	PairNormalization bool
}

// CMeasureOption is a functional option for configuring CMeasure.
type CMeasureOption func(*CMeasureOptions)

// WithPairNormalization divides the C-measure by n(n−1), the literature
// normalization the raw form omits.
func WithPairNormalization() CMeasureOption {
	return func(o *CMeasureOptions) {
		o.PairNormalization = true
	}
}

// CMeasure returns Goodhill's distance-preservation score:
//
//	(1/2) · Σ_i Σ_j ‖x_i − x_j‖ · T[bmu(i)][bmu(j)]
//
// over all sample pairs. Higher is better. The sum is unnormalized by
// default (a documented limitation of this form); WithPairNormalization
// opts into the n(n−1) denominator.
//
// Inputs: Samples always (input-space geometry is part of the score), plus
// Distances or Prototypes for the BMU assignment.
//
// Complexity: O(nSamples²·dim) dominated by the input self-distances.
func CMeasure(topology mat.Matrix, in Inputs, opts ...CMeasureOption) (float64, error) {
	var cfg CMeasureOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	x, err := in.requireSamples()
	if err != nil {
		return 0, err
	}
	d, err := in.resolve()
	if err != nil {
		return 0, err
	}
	n, units := d.Dims()
	if err = checkTopology(topology, units); err != nil {
		return 0, err
	}

	dData, err := pairwise.SelfEuclidean(x)
	if err != nil {
		return 0, err
	}
	bmus := BestMatchingUnits(d)

	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum += dData.At(i, j) * topology.At(bmus[i], bmus[j])
		}
	}

	score := sum / 2.0
	if cfg.PairNormalization {
		score /= float64(n) * float64(n-1)
	}

	return score, nil
}
