package mapgraph_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/topogauge/topogauge/mapgraph"
)

// ExampleGraph_ShortestPath routes between the ends of a 4-unit chain:
// units 0 and 3 are not map-adjacent, so the path follows the intermediate
// adjacent units and sums their prototype-space edges.
func ExampleGraph_ShortestPath() {
	n := 4
	topo := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			topo.Set(i, j, math.Abs(float64(i-j)))
		}
	}

	g, err := mapgraph.New(topo, topo) // adjacent edges all weigh 1
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d, err := g.ShortestPath(0, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("path 0→3: %.0f\n", d)
	// Output: path 0→3: 3
}
