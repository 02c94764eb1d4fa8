package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/pairwise"
)

// Sentinel errors returned by the metric algorithms.
var (
	// ErrMissingInput indicates that a metric could not obtain the data it
	// needs: neither a precomputed sample-prototype distance matrix nor the
	// matrices to derive one (or a specifically required raw matrix) were
	// supplied. Raised before any array work.
	ErrMissingInput = errors.New("quality: need sample-prototype distances, or samples and prototypes to derive them")

	// ErrInvalidNeighborCount indicates that the neighbor count k violates
	// 1 <= k < nSamples/2 for the rank-based metrics. Raised before any
	// array work.
	ErrInvalidNeighborCount = errors.New("quality: neighbor count k must satisfy 1 <= k < nSamples/2")

	// ErrNilTopology indicates that a nil topology matrix was supplied.
	ErrNilTopology = errors.New("quality: topology matrix is nil")

	// ErrTopologySize indicates that the topology matrix is not square with
	// one row per map unit.
	ErrTopologySize = errors.New("quality: topology matrix must be square with one row per unit")

	// ErrNilNeighborhoodFunc indicates that Distortion was called without a
	// neighborhood weighting function.
	ErrNilNeighborhoodFunc = errors.New("quality: neighborhood function is nil")

	// ErrNilDistanceFunc indicates that a metric requiring a map-distance
	// function was called without one.
	ErrNilDistanceFunc = errors.New("quality: map distance function is nil")

	// ErrNonPositiveMaxDistance indicates that the maximum map distance used
	// for threshold normalization is zero or negative.
	ErrNonPositiveMaxDistance = errors.New("quality: maximum map distance must be positive")

	// ErrTooFewUnits indicates that a metric needs at least two map units.
	ErrTooFewUnits = errors.New("quality: at least two map units required")

	// ErrBadGridDim indicates that a non-positive grid dimensionality was
	// requested via WithGridDim.
	ErrBadGridDim = errors.New("quality: grid dimensionality must be positive")
)

// Inputs bundles the three ways of describing a trained map's relation to a
// data set. Exactly one of Distances, or Samples together with Prototypes,
// must be resolvable per call; metrics that additionally need the raw
// samples or prototypes (for input-space or projected-space geometry) say so
// in their documentation and fail with a wrapped ErrMissingInput otherwise.
//
// All matrices are read-only to the metrics: no call modifies its inputs.
type Inputs struct {
	// Samples is the nSamples×dim input sample matrix.
	Samples *mat.Dense

	// Prototypes is the nUnits×dim code-vector matrix, one row per map unit,
	// embedded in the same space as Samples.
	Prototypes *mat.Dense

	// Distances is the optional precomputed nSamples×nUnits matrix of
	// sample-to-prototype Euclidean distances. Supplying it skips the
	// derivation from Samples and Prototypes; callers evaluating several
	// metrics on the same map should precompute it once.
	Distances *mat.Dense
}

// resolve returns the sample-to-prototype distance matrix: Distances when
// given, otherwise the Euclidean distances between Samples and Prototypes.
func (in Inputs) resolve() (*mat.Dense, error) {
	if in.Distances != nil {
		return in.Distances, nil
	}
	if in.Samples == nil || in.Prototypes == nil {
		return nil, ErrMissingInput
	}

	return pairwise.Euclidean(in.Samples, in.Prototypes)
}

// requireSamples returns Samples or a wrapped ErrMissingInput for metrics
// that need input-space geometry regardless of a precomputed Distances.
func (in Inputs) requireSamples() (*mat.Dense, error) {
	if in.Samples == nil {
		return nil, fmt.Errorf("quality: samples matrix required: %w", ErrMissingInput)
	}

	return in.Samples, nil
}

// requirePrototypes returns Prototypes or a wrapped ErrMissingInput for
// metrics that need prototype-space geometry.
func (in Inputs) requirePrototypes() (*mat.Dense, error) {
	if in.Prototypes == nil {
		return nil, fmt.Errorf("quality: prototype matrix required: %w", ErrMissingInput)
	}

	return in.Prototypes, nil
}

// NeighborhoodFunc maps a topology distance to a weight in [0,1]. It must be
// monotonically decreasing with value 1 at distance 0; Distortion treats it
// as the SOM training kernel.
type NeighborhoodFunc func(topologyDistance float64) float64

// DistanceFunc returns the map-topology distance between units i and j.
// Decoupling it from a precomputed matrix keeps non-grid topologies in play
// for the topographic function and product.
type DistanceFunc func(i, j int) float64

// GaussianNeighborhood returns the Gaussian kernel exp(−d²/(2r²)) with
// radius r, the standard SOM neighborhood.
func GaussianNeighborhood(radius float64) NeighborhoodFunc {
	return func(d float64) float64 {
		return math.Exp(-(d * d) / (2 * radius * radius))
	}
}

// WindowNeighborhood returns the rectangular kernel: 1 for topology
// distances up to radius, 0 beyond.
func WindowNeighborhood(radius float64) NeighborhoodFunc {
	return func(d float64) float64 {
		if d <= radius {
			return 1
		}

		return 0
	}
}

// MatrixDistance adapts a precomputed unit-distance matrix into a
// DistanceFunc, so grid maps evaluated from a topology matrix can feed the
// topographic function and product directly.
func MatrixDistance(t mat.Matrix) DistanceFunc {
	return func(i, j int) float64 {
		return t.At(i, j)
	}
}

// checkTopology validates that t is a square nUnits×nUnits matrix.
func checkTopology(t mat.Matrix, nUnits int) error {
	if t == nil {
		return ErrNilTopology
	}
	r, c := t.Dims()
	if r != c || r != nUnits {
		return fmt.Errorf("quality: topology %dx%d for %d units: %w", r, c, nUnits, ErrTopologySize)
	}

	return nil
}
