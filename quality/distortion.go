package quality

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Distortion returns the SOM training objective evaluated as a diagnostic:
// for each sample, the sum over all units of
//
//	nf(T[bmu(s)][unit]) · d(s, unit)²
//
// averaged over samples, where nf is the caller's neighborhood kernel
// (1 at topology distance 0, decreasing, range [0,1]). Lower is better.
//
// Inputs: Distances, or Samples and Prototypes.
//
// Complexity: O(nSamples·nUnits).
func Distortion(topology mat.Matrix, nf NeighborhoodFunc, in Inputs) (float64, error) {
	if nf == nil {
		return 0, ErrNilNeighborhoodFunc
	}
	d, err := in.resolve()
	if err != nil {
		return 0, err
	}
	n, units := d.Dims()
	if err = checkTopology(topology, units); err != nil {
		return 0, err
	}

	bmus := BestMatchingUnits(d)
	scores := make([]float64, n)
	var s, u int
	var dist, sum float64
	for s = 0; s < n; s++ {
		sum = 0
		for u = 0; u < units; u++ {
			dist = d.At(s, u)
			sum += nf(topology.At(bmus[s], u)) * dist * dist
		}
		scores[s] = sum
	}

	return stat.Mean(scores, nil), nil
}
