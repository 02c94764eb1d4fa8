package pairwise

import (
	"errors"
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the pairwise distance functions.
var (
	// ErrNilMatrix indicates that a nil matrix was passed as an input.
	ErrNilMatrix = errors.New("pairwise: matrix is nil")

	// ErrDimensionMismatch indicates that the two inputs do not embed their
	// rows in the same space (different column counts).
	ErrDimensionMismatch = errors.New("pairwise: matrices must share the same column count")
)

// Euclidean returns the m×n matrix D of Euclidean distances between the m
// rows of x and the n rows of y: D[i][j] = ‖x_i − y_j‖₂.
//
// Both inputs must share the same column count; otherwise
// ErrDimensionMismatch is returned with the offending shapes.
//
// Complexity: O(m·n·dim) time, O(m·n) memory.
func Euclidean(x, y mat.Matrix) (*mat.Dense, error) {
	if x == nil || y == nil {
		return nil, ErrNilMatrix
	}
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xc != yc {
		return nil, fmt.Errorf("pairwise: %dx%d vs %dx%d: %w", xr, xc, yr, yc, ErrDimensionMismatch)
	}

	xd := denseView(x)
	yd := denseView(y)
	out := mat.NewDense(xr, yr, nil)
	var i, j int
	for i = 0; i < xr; i++ {
		xi := xd.RawRowView(i)
		row := out.RawRowView(i)
		for j = 0; j < yr; j++ {
			row[j] = vek.Distance(xi, yd.RawRowView(j))
		}
	}

	return out, nil
}

// SelfEuclidean returns the full m×m symmetric matrix of Euclidean distances
// between the rows of x. The diagonal is zero; each off-diagonal pair is
// computed once and mirrored, so D[i][j] == D[j][i] holds exactly.
//
// Complexity: O(m²·dim/2) time, O(m²) memory.
func SelfEuclidean(x mat.Matrix) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	xr, _ := x.Dims()

	xd := denseView(x)
	out := mat.NewDense(xr, xr, nil)
	var i, j int
	var d float64
	for i = 0; i < xr; i++ {
		xi := xd.RawRowView(i)
		for j = i + 1; j < xr; j++ {
			d = vek.Distance(xi, xd.RawRowView(j))
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}

	return out, nil
}

// denseView returns m as a *mat.Dense without copying when possible.
// Raw row views let the vek kernels consume rows as plain float64 slices.
func denseView(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}

	return mat.DenseCopyOf(m)
}
