// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries and external-id resolution: VertexCount, Vertex,
//       Vertices, IndexOf, IDOf, Degree.
// Determinism:
//   - Vertices() returns records in load order (internal index order).
// Concurrency:
//   - The vertex catalog is immutable after NewGraph, so vertex reads take no lock.
//   - Degree reads adjacency under mu read lock.

package core

import "fmt"

// VertexCount returns the number of vertices in the store.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// IDMode reports the external-id resolution mode chosen at construction.
func (g *Graph) IDMode() IDMode {
	return g.mode
}

// Vertex returns the vertex record at internal index i.
// Returns ErrVertexNotFound if i is outside [0, VertexCount()).
func (g *Graph) Vertex(i int) (Vertex, error) {
	if !g.validIndex(i) {
		return Vertex{}, fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	return g.vertices[i], nil
}

// Vertices returns a copy of all vertex records in load order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// IndexOf resolves an external id to its internal index.
//
// In IDModeStrict the id is looked up in the ordered id index; in
// IDModePositional the index is id-1. The boolean is false when the id does
// not resolve to a valid index.
//
// Complexity: O(log V) strict, O(1) positional.
func (g *Graph) IndexOf(id int) (int, bool) {
	if g.mode == IDModePositional {
		i := id - 1
		return i, g.validIndex(i)
	}

	return g.index.Get(id)
}

// IDOf returns the external id of the vertex at internal index i; it is the
// inverse of IndexOf. In IDModePositional the id is i+1 and the record id is
// not consulted.
// Returns ErrVertexNotFound if i is out of range.
func (g *Graph) IDOf(i int) (int, error) {
	if !g.validIndex(i) {
		return 0, fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}
	if g.mode == IDModePositional {
		return i + 1, nil
	}

	return g.vertices[i].ID, nil
}

// Degree returns the number of edges incident to the vertex at internal
// index v. Self-loops are rejected at insertion, so every incident edge
// counts exactly once.
//
// Returns ErrVertexNotFound if v is out of range.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.validIndex(v) {
		return 0, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// validIndex reports whether i addresses a stored vertex.
func (g *Graph) validIndex(i int) bool {
	return i >= 0 && i < len(g.vertices)
}
