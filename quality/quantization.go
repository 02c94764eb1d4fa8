package quality

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// QuantizationError returns the mean distance between each sample and its
// best-matching unit: the average residual of the quantization itself,
// blind to the map topology. Lower is better; 0 means every sample
// coincides with a prototype.
//
// Inputs: Distances, or Samples and Prototypes.
//
// Complexity: O(nSamples·nUnits).
func QuantizationError(in Inputs) (float64, error) {
	d, err := in.resolve()
	if err != nil {
		return 0, err
	}

	n, _ := d.Dims()
	qes := make([]float64, n)
	for s := 0; s < n; s++ {
		qes[s] = floats.Min(d.RawRowView(s))
	}

	return stat.Mean(qes, nil), nil
}
