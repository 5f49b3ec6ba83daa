// SPDX-License-Identifier: MIT
// Package forest provides Kruskal's and Prim's minimum spanning algorithms
// and the cyclomatic number of an undirected core.Graph.
package forest

import (
	"sort"

	"github.com/katalvlaran/nodegraph/core"
)

// Kruskal computes the minimum spanning forest of g.
// Unlike a spanning-tree routine it does not fail on disconnected input: it
// returns one tree per component.
//
// Steps:
//  1. Collect all edges (insertion order).
//  2. Stable-sort by ascending Weight, so equal weights keep Edge.ID order.
//  3. Accept each edge whose endpoints are in different sets; stop early at
//     V-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	n := g.VertexCount()
	uf := NewUnionFind(n)
	f := &Forest{Edges: make([]*core.Edge, 0, n-1)}
	for _, e := range edges {
		if !uf.Union(e.From, e.To) {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight
		if len(f.Edges) == n-1 {
			break
		}
	}
	f.Components = uf.Count()

	return f, nil
}

// CyclomaticNumber returns E - V + C, the number of independent cycles of g.
// It is positive exactly when g contains a cycle.
// Complexity: O(E·α(V)).
func CyclomaticNumber(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	uf := NewUnionFind(g.VertexCount())
	edges := g.Edges()
	for _, e := range edges {
		uf.Union(e.From, e.To)
	}

	return len(edges) - g.VertexCount() + uf.Count(), nil
}
