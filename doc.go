// Package topogauge is an in-memory toolbox for scoring topology-preserving
// vector quantization maps (Self-Organizing Maps and friends) against the
// data they were trained on.
//
// What is topogauge?
//
//	A pure, stateless metric library that brings together:
//		• Distance primitives: dense Euclidean cross/self distance matrices
//		• Rank primitives: min-method row ranks with self-exclusion
//		• Map graphs: unit adjacency, Dijkstra shortest paths, connectivity
//		• Quality metrics: quantization error, topographic error/function/product,
//		  combined error, distortion, C-measure, Kruskal–Shepard error,
//		  neighborhood preservation & trustworthiness
//
// Why choose topogauge?
//
//   - Literature-faithful — each score follows its publication, including
//     tie-breaking and normalization conventions
//   - Pure functions — no global state, every call independently reproducible
//   - Matrix-native — gonum matrices in, scalars (or small slices) out
//   - Topology-agnostic — grids, rings or arbitrary maps via a distance
//     function or a precomputed unit-distance matrix
//
// Everything is organized under four subpackages:
//
//	pairwise/ — Euclidean distance matrices between samples and prototypes
//	rank/     — per-row min-method ranks over distance matrices
//	mapgraph/ — the map topology viewed as a sparse weighted graph
//	quality/  — the metric algorithms themselves
//
// Quick ASCII example:
//
//	    u0───u1
//	    │     │
//	    u2───u3
//
//	a 2×2 map: units at topology distance 1 are map-adjacent; a sample whose
//	two best-matching units are NOT adjacent counts toward topographic error.
//
// Training maps, building grid topologies and reporting are deliberately out
// of scope: topogauge consumes a prototype matrix, a sample matrix (or a
// precomputed sample-to-prototype distance matrix) and a unit-distance view
// of the map, and returns scores.
//
//	go get github.com/topogauge/topogauge
package topogauge
