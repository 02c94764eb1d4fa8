package quality

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/pairwise"
)

// KruskalShepardError returns the mean squared difference between normalized
// input-space pairwise distances and normalized topology distances between
// the corresponding best-matching units:
//
//	Σ_i Σ_j ( ‖x_i−x_j‖/max − T[bmu(i)][bmu(j)]/max' )² / (n²−n)
//
// where each matrix is divided by its own maximum. Lower is better; 0 means
// the map reproduces the (scaled) input distances exactly.
//
// Degenerate note: if all samples coincide, or all samples share one BMU,
// the corresponding maximum is zero and the score is NaN. That is the
// established behavior of this form, kept rather than masked.
//
// Inputs: Samples always, plus Distances or Prototypes for the BMU
// assignment.
//
// Complexity: O(nSamples²·dim).
func KruskalShepardError(topology mat.Matrix, in Inputs) (float64, error) {
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

	// Topology distances between BMU pairs, before normalization.
	dSom := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dSom.Set(i, j, topology.At(bmus[i], bmus[j]))
		}
	}

	dataMax := floats.Max(dData.RawMatrix().Data)
	somMax := floats.Max(dSom.RawMatrix().Data)

	var diff, sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			diff = dData.At(i, j)/dataMax - dSom.At(i, j)/somMax
			sum += diff * diff
		}
	}

	return sum / float64(n*n-n), nil
}
