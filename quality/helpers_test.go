package quality_test

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/quality"
)

// unitSquare returns four samples at the corners of the unit square, in the
// grid order (0,0), (1,0), (0,1), (1,1).
func unitSquare() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
}

// squareGridTopology returns the 2×2 grid topology matrix for the unitSquare
// unit order: 1 for grid-adjacent pairs, 2 for the diagonals, 0 on the
// diagonal.
func squareGridTopology() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		0, 1, 1, 2,
		1, 0, 2, 1,
		1, 2, 0, 1,
		2, 1, 1, 0,
	})
}

// chainTopology returns the |i-j| topology of a 1-D chain of n units.
func chainTopology(n int) *mat.Dense {
	topo := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			topo.Set(i, j, math.Abs(float64(i-j)))
		}
	}

	return topo
}

// line returns the n×1 matrix of positions 0, 1, …, n-1.
func line(n int) *mat.Dense {
	x := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
	}

	return x
}

// chainDistance is the 1-D map distance |i-j|.
func chainDistance(i, j int) float64 {
	return math.Abs(float64(i - j))
}

// gridDistance returns the Manhattan map distance for units placed at the
// given grid coordinates.
func gridDistance(coords [][2]float64) quality.DistanceFunc {
	return func(i, j int) float64 {
		return math.Abs(coords[i][0]-coords[j][0]) + math.Abs(coords[i][1]-coords[j][1])
	}
}
