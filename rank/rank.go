package rank

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Rows.
var (
	// ErrNilMatrix indicates that a nil matrix was passed as the input.
	ErrNilMatrix = errors.New("rank: matrix is nil")

	// ErrNotSquare indicates that self-exclusion was requested on a matrix
	// that has no meaningful diagonal.
	ErrNotSquare = errors.New("rank: self-exclusion requires a square matrix")
)

// Options configures the behavior of Rows.
type Options struct {
	// InfiniteSelf replaces each diagonal entry with +Inf before ranking,
	// pushing a point's self-distance to the last rank of its row.
	InfiniteSelf bool
}

// Option is a functional option for configuring Rows.
type Option func(*Options)

// WithInfiniteSelf excludes the diagonal from the neighbor ordering by
// treating self-distances as +Inf. Requires a square input matrix.
func WithInfiniteSelf() Option {
	return func(o *Options) {
		o.InfiniteSelf = true
	}
}

// DefaultOptions returns the default Rows configuration: rank every entry,
// diagonal included.
func DefaultOptions() Options {
	return Options{}
}

// Rows returns the same-shape matrix of min-method ranks of d, computed
// independently per row: rank(i,j) = 1 + |{j': d[i][j'] < d[i][j]}|, with
// tied values sharing that lowest rank.
//
// Ranks are integral but returned as float64 so they compose directly with
// rank-difference arithmetic downstream.
//
// Complexity: O(r·c·log c) time, O(r·c) memory. d is never modified.
func Rows(d mat.Matrix, opts ...Option) (*mat.Dense, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r, c := d.Dims()
	if cfg.InfiniteSelf && r != c {
		return nil, fmt.Errorf("rank: %dx%d: %w", r, c, ErrNotSquare)
	}

	ranks := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	order := make([]int, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			row[j] = d.At(i, j)
			order[j] = j
		}
		if cfg.InfiniteSelf {
			row[i] = math.Inf(1)
		}

		// Ascending index sort; stability keeps tied entries in index order.
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] < row[order[b]]
		})

		// Walk tie groups: every member of a group gets the group's first
		// (lowest) 1-based position.
		pos := 0
		for pos < c {
			end := pos
			for end+1 < c && row[order[end+1]] == row[order[pos]] {
				end++
			}
			for t := pos; t <= end; t++ {
				ranks.Set(i, order[t], float64(pos+1))
			}
			pos = end + 1
		}
	}

	return ranks, nil
}
