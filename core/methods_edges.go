// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeCount/Edges/EdgeBetween,
//       plus path marking (MarkPath/InPathCount).
// Determinism:
//   - Edges() returns edges in insertion order (Edge.ID asc).
//   - Edge IDs are dense insertion ordinals starting at 0.
// Concurrency:
//   - Mutations (AddEdge, MarkPath) under mu write lock.
//   - Read queries under mu read lock.
// Policy:
//   - Simple graph: self-loops and parallel edges are rejected, the first
//     edge between a pair wins.

package core

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddEdge inserts an undirected edge between the vertices with external ids
// uID and vID and returns it.
//
// Steps:
//  1. Resolve both ids via IndexOf; unresolved ids leave the store untouched
//     and return ErrVertexNotFound so the caller can report and skip.
//  2. Reject u == v with ErrLoopNotAllowed.
//  3. Reject an existing unordered pair with ErrMultiEdgeNotAllowed.
//  4. Compute the Euclidean weight from the endpoint coordinates.
//  5. Append to the catalog and insert into both adjacency lists, keeping
//     them sorted by neighbor index.
//
// Complexity: O(deg(u) + deg(v)) for the sorted adjacency insertion.
func (g *Graph) AddEdge(uID, vID int) (*Edge, error) {
	u, ok := g.IndexOf(uID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, uID)
	}
	v, ok := g.IndexOf(vID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, vID)
	}
	if u == v {
		return nil, fmt.Errorf("%w: id %d", ErrLoopNotAllowed, uID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := newPairKey(u, v)
	if _, exists := g.pairs[key]; exists {
		return nil, fmt.Errorf("%w: ids %d-%d", ErrMultiEdgeNotAllowed, uID, vID)
	}

	e := &Edge{
		ID:     len(g.edges),
		From:   u,
		To:     v,
		Weight: distance(g.vertices[u], g.vertices[v]),
	}
	g.edges = append(g.edges, e)
	g.pairs[key] = e
	g.adj[u] = insertNeighbor(g.adj[u], Neighbor{Vertex: v, Edge: e})
	g.adj[v] = insertNeighbor(g.adj[v], Neighbor{Vertex: u, Edge: e})

	return e, nil
}

// EdgeCount returns the number of edges in the store.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns all edges in insertion order.
// The slice is fresh; the *Edge values are live and read-only by convention.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeBetween returns the edge joining internal indices u and v, in either
// orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.pairs[newPairKey(u, v)]

	return e, ok
}

// MarkPath clears InPath on every edge, then sets it on the edge between
// each consecutive pair of internal indices in path. Pairs with no joining
// edge are skipped. The whole operation runs under one write lock, so
// readers never observe a partially marked path.
//
// Returns the number of edges flagged.
// Complexity: O(E + len(path)).
func (g *Graph) MarkPath(path []int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		e.InPath = false
	}

	flagged := 0
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.pairs[newPairKey(path[i], path[i+1])]
		if !ok || e.InPath {
			continue
		}
		e.InPath = true
		flagged++
	}

	return flagged
}

// InPathCount returns the number of edges currently flagged InPath.
// Complexity: O(E).
func (g *Graph) InPathCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, e := range g.edges {
		if e.InPath {
			n++
		}
	}

	return n
}

// distance returns the Euclidean distance between two vertex positions.
func distance(a, b Vertex) float64 {
	return r3.Norm(r3.Sub(r3.Vec{X: a.X, Y: a.Y, Z: a.Z}, r3.Vec{X: b.X, Y: b.Y, Z: b.Z}))
}

// insertNeighbor inserts nb into list keeping ascending order by Vertex.
func insertNeighbor(list []Neighbor, nb Neighbor) []Neighbor {
	i, _ := slices.BinarySearchFunc(list, nb.Vertex, func(x Neighbor, target int) int {
		return x.Vertex - target
	})

	return slices.Insert(list, i, nb)
}
