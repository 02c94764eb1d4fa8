package quality

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/topogauge/topogauge/mapgraph"
	"github.com/topogauge/topogauge/pairwise"
)

// CombinedError returns Kaski & Lagus' blend of quantization and topographic
// quality: per sample,
//
//	d(sample, bmu1) + pathDistance(bmu1, bmu2)
//
// where pathDistance is the direct prototype-space edge when the two BMUs
// are map-adjacent, and otherwise the shortest path through chains of
// map-adjacent units, weighted by prototype-space distances. Mean over
// samples; lower is better.
//
// A disconnected BMU pair contributes +Inf (and so does the mean) rather
// than hiding a torn map.
//
// Inputs: Prototypes always (edge weights live in prototype space), plus
// Distances or Samples for the sample-to-prototype distances. The map needs
// at least two units (ErrTooFewUnits otherwise: a second BMU cannot exist).
//
// Complexity: O(nUnits²·dim) for the edge weights plus one Dijkstra run per
// sample with non-adjacent BMUs.
func CombinedError(topology mat.Matrix, in Inputs) (float64, error) {
	p, err := in.requirePrototypes()
	if err != nil {
		return 0, err
	}
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

	protoDist, err := pairwise.SelfEuclidean(p)
	if err != nil {
		return 0, err
	}
	g, err := mapgraph.New(topology, protoDist)
	if err != nil {
		return 0, err
	}

	pairs := TwoBestMatchingUnits(d)
	ces := make([]float64, n)
	var path float64
	for s, pr := range pairs {
		ces[s] = d.At(s, pr[0])
		if topology.At(pr[0], pr[1]) == 1 {
			ces[s] += protoDist.At(pr[0], pr[1])
			continue
		}
		path, err = g.ShortestPath(pr[0], pr[1])
		if err != nil {
			return 0, err
		}
		ces[s] += path
	}

	return stat.Mean(ces, nil), nil
}
