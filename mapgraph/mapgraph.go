package mapgraph

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the mapgraph constructors and queries.
var (
	// ErrNilMatrix indicates that a nil matrix was passed as an input.
	ErrNilMatrix = errors.New("mapgraph: matrix is nil")

	// ErrNotSquare indicates that the topology matrix is not square.
	ErrNotSquare = errors.New("mapgraph: topology matrix must be square")

	// ErrDimensionMismatch indicates that the topology and weight matrices
	// have different shapes.
	ErrDimensionMismatch = errors.New("mapgraph: topology and weight matrices must have equal shape")

	// ErrNegativeWeight indicates that a map-adjacent unit pair carries a
	// negative edge weight, which shortest-path search cannot handle.
	ErrNegativeWeight = errors.New("mapgraph: negative edge weight encountered")

	// ErrUnitOutOfRange indicates that a unit index is outside [0, nUnits).
	ErrUnitOutOfRange = errors.New("mapgraph: unit index out of range")

	// ErrBadUnitCount indicates that a non-positive unit count was requested.
	ErrBadUnitCount = errors.New("mapgraph: unit count must be positive")
)

// Graph is the sparse adjacency view of a map topology: an undirected
// weighted graph whose edges connect exactly the unit pairs at topology
// distance 1. A Graph is immutable after construction.
type Graph struct {
	n   int
	adj [][]halfEdge
}

// halfEdge is one direction of an undirected edge.
type halfEdge struct {
	to     int
	weight float64
}

// New builds the adjacency graph of a map. topology[i][j] == 1 marks units i
// and j as map-adjacent; the edge weight is read from weights[i][j]. All
// other pairs have no edge, so paths between non-adjacent units must pass
// through chains of adjacent intermediates.
//
// Validation order: nil inputs, square topology, equal shapes, non-negative
// weights on adjacent pairs. Infinite weights drop the edge entirely.
//
// Complexity: O(n²) time, O(n + E) memory.
func New(topology, weights mat.Matrix) (*Graph, error) {
	if topology == nil || weights == nil {
		return nil, ErrNilMatrix
	}
	tr, tc := topology.Dims()
	if tr != tc {
		return nil, fmt.Errorf("mapgraph: topology %dx%d: %w", tr, tc, ErrNotSquare)
	}
	wr, wc := weights.Dims()
	if wr != tr || wc != tc {
		return nil, fmt.Errorf("mapgraph: topology %dx%d vs weights %dx%d: %w", tr, tc, wr, wc, ErrDimensionMismatch)
	}

	g := &Graph{n: tr, adj: make([][]halfEdge, tr)}
	var i, j int
	var w float64
	for i = 0; i < tr; i++ {
		for j = 0; j < tc; j++ {
			if i == j || topology.At(i, j) != 1 {
				continue
			}
			w = weights.At(i, j)
			if w < 0 {
				return nil, fmt.Errorf("mapgraph: edge %d–%d weight=%v: %w", i, j, w, ErrNegativeWeight)
			}
			if math.IsInf(w, 1) {
				continue // impassable edge, same as no edge
			}
			g.adj[i] = append(g.adj[i], halfEdge{to: j, weight: w})
		}
	}

	return g, nil
}

// Units returns the number of map units in the graph.
func (g *Graph) Units() int { return g.n }

// ShortestPath returns the minimum total edge weight of a path from src to
// dst over map-adjacent units, or +Inf when no such path exists.
//
// Dijkstra with a lazy-decrease-key min-heap: stale heap entries are skipped
// on pop, and the search stops as soon as dst is finalized.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (g *Graph) ShortestPath(src, dst int) (float64, error) {
	if src < 0 || src >= g.n {
		return 0, fmt.Errorf("mapgraph: src=%d, units=%d: %w", src, g.n, ErrUnitOutOfRange)
	}
	if dst < 0 || dst >= g.n {
		return 0, fmt.Errorf("mapgraph: dst=%d, units=%d: %w", dst, g.n, ErrUnitOutOfRange)
	}

	dist := make([]float64, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	visited := make([]bool, g.n)

	pq := make(unitQueue, 0, g.n)
	heap.Init(&pq)
	heap.Push(&pq, unitItem{unit: src, dist: 0})

	var nd float64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(unitItem)
		if visited[item.unit] {
			continue // stale entry from lazy decrease-key
		}
		visited[item.unit] = true
		if item.unit == dst {
			return item.dist, nil
		}

		for _, e := range g.adj[item.unit] {
			nd = item.dist + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				heap.Push(&pq, unitItem{unit: e.to, dist: nd})
			}
		}
	}

	return math.Inf(1), nil
}

// Connectivity builds the nUnits×nUnits 0/1 connectivity matrix induced by
// per-sample best-matching-unit pairs: for every pair (a, b), both C[a][b]
// and C[b][a] are set to 1.
//
// Complexity: O(nUnits² + |bmuPairs|).
func Connectivity(nUnits int, bmuPairs [][2]int) (*mat.Dense, error) {
	if nUnits <= 0 {
		return nil, fmt.Errorf("mapgraph: nUnits=%d: %w", nUnits, ErrBadUnitCount)
	}

	conn := mat.NewDense(nUnits, nUnits, nil)
	for _, p := range bmuPairs {
		if p[0] < 0 || p[0] >= nUnits || p[1] < 0 || p[1] >= nUnits {
			return nil, fmt.Errorf("mapgraph: bmu pair (%d,%d), units=%d: %w", p[0], p[1], nUnits, ErrUnitOutOfRange)
		}
		conn.Set(p[0], p[1], 1)
		conn.Set(p[1], p[0], 1)
	}

	return conn, nil
}

// unitItem is a (unit, tentative distance) heap entry.
type unitItem struct {
	unit int
	dist float64
}

// unitQueue is a min-heap of unitItem ordered by dist ascending.
type unitQueue []unitItem

func (pq unitQueue) Len() int            { return len(pq) }
func (pq unitQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq unitQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *unitQueue) Push(x interface{}) { *pq = append(*pq, x.(unitItem)) }
func (pq *unitQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
