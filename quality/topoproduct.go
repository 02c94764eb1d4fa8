package quality

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/pairwise"
)

// distanceEpsilon keeps the Q ratios finite for coincident prototypes.
const distanceEpsilon = 1e-16

// TopographicProduct returns Bauer & Pawelzik's dimensionality-fit score.
// For each unit j and neighbor count k, the input-space ratio Q1 and map
// ratio Q2 compare the map-order-k neighbor against the input-order-k
// neighbor; the ratios are combined geometrically across growing neighbor
// counts (P3) and log(P3) is averaged over all units and counts, normalized
// by nUnits·(nUnits−1).
//
// Reading the sign: negative means the map is too small for the data's
// intrinsic dimensionality, positive means too large, near zero a good fit.
//
// df supplies the map distance between units; prototypes is the nUnits×dim
// code-vector matrix. Neighbor orderings break distance ties by lowest unit
// index, so results are deterministic.
//
// Complexity: O(nUnits³) time, O(nUnits²) memory.
func TopographicProduct(df DistanceFunc, prototypes mat.Matrix) (float64, error) {
	if df == nil {
		return 0, ErrNilDistanceFunc
	}
	if prototypes == nil {
		return 0, ErrMissingInput
	}
	units, _ := prototypes.Dims()
	if units < 2 {
		return 0, ErrTooFewUnits
	}

	originalD, err := pairwise.SelfEuclidean(prototypes)
	if err != nil {
		return 0, err
	}
	// Shift every distance by epsilon so ratios with coincident points stay
	// finite. originalD is freshly allocated, so in-place is safe.
	raw := originalD.RawMatrix().Data
	for i := range raw {
		raw[i] += distanceEpsilon
	}

	mapD := mat.NewDense(units, units, nil)
	var j, k int
	for j = 0; j < units; j++ {
		for k = 0; k < units; k++ {
			mapD.Set(j, k, df(j, k)+distanceEpsilon)
		}
	}

	var sum float64
	q1 := make([]float64, units-1)
	q2 := make([]float64, units-1)
	var origOrder, mapOrder []int
	var logSum float64
	for j = 0; j < units; j++ {
		origOrder = ascendingOrder(originalD.RawRowView(j))
		mapOrder = ascendingOrder(mapD.RawRowView(j))

		for k = 1; k < units; k++ {
			q1[k-1] = originalD.At(j, mapOrder[k]) / originalD.At(j, origOrder[k])
			q2[k-1] = mapD.At(j, mapOrder[k]) / mapD.At(j, origOrder[k])
		}

		// log P3(j,k) = log Π_{l<=k} (Q1·Q2)^(1/(2k)): a running log sum
		// over l, rescaled by 1/(2k) at each neighbor count.
		logSum = 0
		for k = 1; k < units; k++ {
			logSum += math.Log(q1[k-1] * q2[k-1])
			sum += logSum / (2.0 * float64(k))
		}
	}

	return sum / (float64(units) * float64(units-1)), nil
}

// ascendingOrder returns the indices of row sorted by value ascending,
// ties by lowest index.
func ascendingOrder(row []float64) []int {
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] < row[order[b]]
	})

	return order
}
