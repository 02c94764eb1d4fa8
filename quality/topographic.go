package quality

import "gonum.org/v1/gonum/mat"

// TopographicError returns the fraction of samples whose two best-matching
// units are not map-adjacent, i.e. whose topology distance exceeds 1. Range
// [0,1], lower is better; 0 means the map never folds locally.
//
// BMU ties resolve deterministically to the lowest unit index.
//
// Inputs: Distances, or Samples and Prototypes. The topology matrix must be
// square with one row per unit, and the map needs at least two units
// (ErrTooFewUnits otherwise: a second BMU cannot exist).
//
// Complexity: O(nSamples·nUnits).
func TopographicError(topology mat.Matrix, in Inputs) (float64, error) {
	d, err := in.resolve()
	if err != nil {
		return 0, err
	}
	n, units := d.Dims()
	if units < 2 {
		return 0, ErrTooFewUnits
	}
	if err = checkTopology(topology, units); err != nil {
		return 0, err
	}

	pairs := TwoBestMatchingUnits(d)
	errs := 0
	for _, p := range pairs {
		if topology.At(p[0], p[1]) > 1 {
			errs++
		}
	}

	return float64(errs) / float64(n), nil
}
