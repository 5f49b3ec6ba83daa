// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() is sorted by neighbor index ascending; traversals in bfs,
//     dfs and dijkstra rely on this for reproducible results.
// Concurrency:
//   - Reads hold mu read lock and return copies of the adjacency slice.

package core

import "fmt"

// Neighbors returns the adjacency entries of the vertex at internal index v,
// sorted ascending by neighbor index.
//
// Returns ErrVertexNotFound if v is out of range.
//
// Notes:
//   - The returned slice is a copy; the *Edge values are live catalog edges
//     and must be treated as read-only.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if !g.validIndex(v) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// NeighborIDs returns the external ids adjacent to the vertex with external
// id id, in ascending internal-index order.
//
// Returns ErrVertexNotFound if id does not resolve.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	v, ok := g.IndexOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}
	nbs, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(nbs))
	for i, nb := range nbs {
		if out[i], err = g.IDOf(nb.Vertex); err != nil {
			return nil, err
		}
	}

	return out, nil
}
