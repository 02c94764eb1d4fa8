// Package quality scores trained topology-preserving vector quantization
// maps (Self-Organizing Maps and relatives) against the data they quantize.
//
// Every metric is a pure function: it receives a map description, derives
// whatever distances, best-matching units (BMUs) and ranks it needs (or
// takes them precomputed) and returns a scalar or a small slice. No
// state survives a call, and no call modifies its inputs.
//
// Supplying data:
//
//	in := quality.Inputs{Samples: x, Prototypes: p}        // distances derived
//	in := quality.Inputs{Distances: d, Prototypes: p}      // distances reused
//
// Exactly one of Distances, or Samples with Prototypes, must be resolvable;
// otherwise a metric fails fast with ErrMissingInput. Metrics that also need
// raw input-space or prototype-space geometry (C-measure, Kruskal–Shepard,
// the neighborhood family, combined error, topographic product) document the
// extra requirement and wrap ErrMissingInput with the missing matrix's name.
//
// The metrics:
//
//   - QuantizationError — mean sample-to-BMU distance (lower better)
//   - TopographicError — fraction of samples with non-adjacent BMU pairs
//   - Distortion — the SOM training objective under a caller-supplied
//     neighborhood kernel
//   - CMeasure — input-distance × map-distance sum (higher better;
//     unnormalized by default, see WithPairNormalization)
//   - KruskalShepardError — mean squared normalized-distance disagreement
//   - CombinedError — sample-to-BMU distance plus the BMU-to-BMU path over
//     map-adjacent units
//   - NeighborhoodPreservation, Trustworthiness (and the shared-pass
//     NeighborhoodPreservationTrustworthiness) — rank-based k-NN overlap
//   - TopographicFunction — connectivity violations per distance threshold
//   - TopographicProduct — map-vs-data dimensionality fit (sign carries the
//     verdict)
//
// Determinism: BMU ties and neighbor-order ties always break to the lowest
// unit index, and ranks use the min tie method, so repeated calls agree bit
// for bit.
//
// Strategy functions:
//
//	NeighborhoodFunc — Distortion's kernel; GaussianNeighborhood and
//	WindowNeighborhood cover the common cases.
//	DistanceFunc — map distance for TopographicFunction/Product;
//	MatrixDistance adapts a precomputed topology matrix.
//
// Errors (sentinel): ErrMissingInput, ErrInvalidNeighborCount,
// ErrNilTopology, ErrTopologySize, ErrNilNeighborhoodFunc,
// ErrNilDistanceFunc, ErrNonPositiveMaxDistance, ErrTooFewUnits,
// ErrBadGridDim. All errors
// are synchronous; no partial result is ever returned.
package quality
