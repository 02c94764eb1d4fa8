package quality_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/quality"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleQuantizationError
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four samples at the corners of the unit square, quantized by a map whose
//	prototypes coincide with the samples. Every sample sits exactly on its
//	best-matching unit, so the mean residual is zero.
func ExampleQuantizationError() {
	corners := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})

	qe, err := quality.QuantizationError(quality.Inputs{
		Samples:    corners,
		Prototypes: corners,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("quantization error: %.1f\n", qe)
	// Output: quantization error: 0.0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleTopographicError
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same self-quantizing unit square on a 2×2 grid topology: each
//	sample's second BMU is a grid-adjacent corner, so the map never folds.
func ExampleTopographicError() {
	corners := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	grid := mat.NewDense(4, 4, []float64{
		0, 1, 1, 2,
		1, 0, 2, 1,
		1, 2, 0, 1,
		2, 1, 1, 0,
	})

	te, err := quality.TopographicError(grid, quality.Inputs{
		Samples:    corners,
		Prototypes: corners,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("topographic error: %.1f\n", te)
	// Output: topographic error: 0.0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleCombinedError
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 1-D chain of four units quantizing the points 0..3. Every sample lands
//	on its own unit and its second BMU is the adjacent unit, so each sample
//	contributes exactly one prototype-space edge of weight 1.
func ExampleCombinedError() {
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	chain := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chain.Set(i, j, math.Abs(float64(i-j)))
		}
	}

	ce, err := quality.CombinedError(chain, quality.Inputs{
		Samples:    x,
		Prototypes: x,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("combined error: %.1f\n", ce)
	// Output: combined error: 1.0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleNeighborhoodPreservationTrustworthiness
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Identity projection: prototypes equal to the samples keep every rank
//	intact, so both scores reach their optimum of 1.
func ExampleNeighborhoodPreservationTrustworthiness() {
	x := mat.NewDense(10, 1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	np, tr, err := quality.NeighborhoodPreservationTrustworthiness(2, quality.Inputs{
		Samples:    x,
		Prototypes: x,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("preservation=%.2f trustworthiness=%.2f\n", np, tr)
	// Output: preservation=1.00 trustworthiness=1.00
}
