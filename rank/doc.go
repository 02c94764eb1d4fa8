// Package rank assigns per-row neighbor ranks to distance matrices using the
// "min" tie method: a value's rank is 1 + the count of strictly smaller
// entries in its row, and tied values share the lowest rank among them.
//
// Example row:
//
//	values: [0.5, 0.5, 2.0, 9.0]
//	ranks:  [1,   1,   3,   4]
//
// The two smallest values tie on rank 1 and the next distinct value takes
// rank 3, not 2. Several neighborhood-preservation scores bake this exact
// convention into their closed-form normalization constants, so no other tie
// method (average, dense, ordinal) is offered.
//
// Self-exclusion:
//
//	WithInfiniteSelf() forces the diagonal to +Inf before ranking, so a point
//	is never counted as its own neighbor. It requires a square input.
//
// Complexity: O(r·c·log c) time (one index sort per row), O(r·c) memory for
// the result. Inputs are never modified.
//
// Errors (sentinel):
//
//   - ErrNilMatrix if the input matrix is nil.
//   - ErrNotSquare if WithInfiniteSelf is requested on a non-square matrix.
package rank
