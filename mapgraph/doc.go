// Package mapgraph views a quantization map's topology as a sparse weighted
// graph over unit indices.
//
// Construction:
//
//	New(topology, weights) keeps an edge between units i and j only when
//	topology[i][j] == 1 (map-adjacent units). Every other pair is absent,
//	an infinite-weight wall, which forces paths to follow chains
//	of adjacent units. Edge weights come from a second matrix, typically the
//	prototype-space Euclidean distances between the units' code vectors.
//
// Queries:
//
//   - ShortestPath(src, dst): single-source Dijkstra over the adjacency,
//     lazy decrease-key on a container/heap min-heap, early exit once dst is
//     finalized. Returns +Inf when dst is unreachable (disconnected maps are
//     reported, not masked).
//   - Connectivity(nUnits, bmuPairs): the 0/1 unit-connectivity matrix
//     induced by per-sample best-matching-unit pairs, with both directions
//     marked for every pair.
//
// Complexity:
//
//   - New:          O(n²) scan of the topology matrix.
//   - ShortestPath: O((V + E) log V) time, O(V + E) space.
//   - Connectivity: O(n² + |pairs|).
//
// Errors (sentinel):
//
//   - ErrNilMatrix         if an input matrix is nil.
//   - ErrNotSquare         if the topology matrix is not square.
//   - ErrDimensionMismatch if topology and weight shapes differ.
//   - ErrNegativeWeight    if an adjacent pair carries a negative weight.
//   - ErrUnitOutOfRange    if a unit index falls outside [0, nUnits).
//   - ErrBadUnitCount      if a non-positive unit count is requested.
package mapgraph
