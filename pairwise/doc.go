// Package pairwise computes dense Euclidean distance matrices between point
// sets, the shared geometric primitive underneath every map-quality metric.
//
// Overview:
//
//   - Euclidean(x, y) returns the m×n matrix of distances between the m rows
//     of x and the n rows of y (samples vs. prototypes, typically).
//   - SelfEuclidean(x) returns the full m×m symmetric self-distance matrix
//     with a zero diagonal, computed once per pair and mirrored.
//
// Row distances run on vek's SIMD float64 kernels, so both functions stay
// allocation-light: one output matrix, no temporaries per pair.
//
// Complexity:
//
//   - Euclidean:     O(m·n·dim) time, O(m·n) memory for the result.
//   - SelfEuclidean: O(m²·dim/2) time, O(m²) memory for the result.
//
// Errors (sentinel):
//
//   - ErrNilMatrix         if an input matrix is nil.
//   - ErrDimensionMismatch if the inputs do not share the same column count.
//
// Both functions are pure: inputs are never modified, results are freshly
// allocated, and repeated calls with equal inputs return equal outputs.
package pairwise
