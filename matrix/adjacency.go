// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - dense weighted adjacency of a core.Graph.
//
// Convention:
//   - Rows/columns follow internal vertex indices (load order).
//   - 0 means "no edge"; edges are symmetric (undirected store).

package matrix

import "github.com/katalvlaran/nodegraph/core"

// Adjacency builds the V×V weighted adjacency matrix of g.
// Complexity: O(V² + E) time and memory.
func Adjacency(g *core.Graph) (*Dense, error) {
	return adjacency(g, 0)
}

// adjacency fills absent entries with empty, so zero-length edges stay
// distinguishable when empty is +Inf.
func adjacency(g *core.Graph, empty float64) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if empty != 0 {
		for i := range m.data {
			m.data[i] = empty
		}
	}
	for _, e := range g.Edges() {
		// Mirror both directions; indices are valid by store construction.
		m.data[e.From*n+e.To] = e.Weight
		m.data[e.To*n+e.From] = e.Weight
	}

	return m, nil
}
