// SPDX-License-Identifier: MIT
// Package dijkstra computes single-source shortest paths over a core.Graph
// whose edge weights are non-negative Euclidean distances.
//
// What
//
//   - Dijkstra(g, source, opts...) settles every reachable vertex and returns a
//     Result (Dist, Prev, Settled) indexed by internal vertex index.
//   - Result.PathTo(target) rebuilds the index path by walking Prev.
//   - ShortestPath(g, sourceID, targetID) works on external ids, stops as soon
//     as the target is settled and returns Path{Distance, IDs}.
//   - Legacy(path, err) produces the flat (-1, []) form for "no path" and
//     "invalid endpoint", for report and CSV consumers.
//   - MarkPathEdges(g, ids) flags the edges of a path in the store.
//
// Determinism
//
//	Neighbors are relaxed in ascending index order, ties in the heap settle the
//	lower index first, and only strictly shorter distances replace a
//	predecessor. The same store therefore always yields the same path.
//
// Complexity
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Usage
//
//	p, err := dijkstra.ShortestPath(g, 1, 3)
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	case errors.Is(err, dijkstra.ErrInvalidVertex):
//	}
//	n, _ := dijkstra.MarkPathEdges(g, p.IDs)
package dijkstra
