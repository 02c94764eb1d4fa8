package quality

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/pairwise"
	"github.com/topogauge/topogauge/rank"
)

// NeighborhoodPreservation returns Venna & Kaski's rank-based score of how
// well each sample's true k nearest input-space neighbors survive the
// projection onto best-matching units. Range [0,1], higher is better; 1 when
// projected ranks equal original ranks exactly.
//
// Requires 1 <= k < nSamples/2 (ErrInvalidNeighborCount otherwise).
// Inputs: Samples and Prototypes always; Distances optionally short-cuts the
// BMU assignment.
//
// Complexity: O(nSamples²·(dim + log nSamples)).
func NeighborhoodPreservation(k int, in Inputs) (float64, error) {
	np, _, err := neighborhoodScores(k, in)

	return np, err
}

// Trustworthiness returns the symmetric counterpart of
// NeighborhoodPreservation: it penalizes projected neighbors that are not
// true input-space neighbors. Range [0,1], higher is better.
//
// Same preconditions and inputs as NeighborhoodPreservation.
func Trustworthiness(k int, in Inputs) (float64, error) {
	_, tr, err := neighborhoodScores(k, in)

	return tr, err
}

// NeighborhoodPreservationTrustworthiness computes both scores in a single
// pass, sharing the two rank matrices and the k-NN tie weights. Identical
// formulas, returned as (preservation, trustworthiness).
func NeighborhoodPreservationTrustworthiness(k int, in Inputs) (float64, float64, error) {
	return neighborhoodScores(k, in)
}

// neighborhoodScores is the shared core of the rank-based pair.
//
// For sample i, with min-method ranks over +Inf-diagonal distance matrices:
//
//	w(i)   = |{j: projRank(i,j) <= k}| / |{j: origRank(i,j) <= k}|
//	np(i)  = Σ (projRank(i,j) − k)·w(i)   over origRank <= k < projRank
//	tr(i)  = Σ (origRank(i,j) − k)/w(i)   over projRank <= k < origRank
//
// and each total is folded through 1 − 2/(n·k·(2n−3k−1))·Σ. The weight
// corrects for k-NN ties, which the min rank method makes well-defined.
func neighborhoodScores(k int, in Inputs) (float64, float64, error) {
	x, err := in.requireSamples()
	if err != nil {
		return 0, 0, err
	}
	n, _ := x.Dims()
	if k < 1 || float64(k) >= float64(n)/2 {
		return 0, 0, fmt.Errorf("quality: k=%d with %d samples: %w", k, n, ErrInvalidNeighborCount)
	}
	p, err := in.requirePrototypes()
	if err != nil {
		return 0, 0, err
	}
	d, err := in.resolve()
	if err != nil {
		return 0, 0, err
	}

	dData, err := pairwise.SelfEuclidean(x)
	if err != nil {
		return 0, 0, err
	}
	origRanks, err := rank.Rows(dData, rank.WithInfiniteSelf())
	if err != nil {
		return 0, 0, err
	}

	// Project each sample to its BMU's code vector, then rank the projected
	// self-distances the same way.
	bmus := BestMatchingUnits(d)
	_, dim := p.Dims()
	proj := mat.NewDense(n, dim, nil)
	for s, b := range bmus {
		proj.SetRow(s, p.RawRowView(b))
	}
	dProj, err := pairwise.SelfEuclidean(proj)
	if err != nil {
		return 0, 0, err
	}
	projRanks, err := rank.Rows(dProj, rank.WithInfiniteSelf())
	if err != nil {
		return 0, 0, err
	}

	kf := float64(k)
	var npSum, trSum float64
	var i, j, countOrig, countProj int
	var or, pr, w float64
	for i = 0; i < n; i++ {
		countOrig, countProj = 0, 0
		for j = 0; j < n; j++ {
			if origRanks.At(i, j) <= kf {
				countOrig++
			}
			if projRanks.At(i, j) <= kf {
				countProj++
			}
		}
		w = float64(countProj) / float64(countOrig)

		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			or, pr = origRanks.At(i, j), projRanks.At(i, j)
			if or <= kf && pr > kf {
				npSum += (pr - kf) * w
			}
			if pr <= kf && or > kf {
				trSum += (or - kf) / w
			}
		}
	}

	norm := 2.0 / (float64(n) * kf * (2.0*float64(n) - 3.0*kf - 1.0))

	return 1.0 - norm*npSum, 1.0 - norm*trSum, nil
}
