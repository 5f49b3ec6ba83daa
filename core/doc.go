// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory graph store used by every analyzer in
// this module: an undirected, simple, weighted graph whose vertices carry 3D
// coordinates and an external identifier.
//
// The Graph G = (V,E) is built in two phases:
//
//   - NewGraph(vertices) fixes the vertex sequence. The position of a record
//     in that sequence is its internal index; all algorithms speak indices.
//   - AddEdge(uID, vID) inserts edges by external id. The weight is the
//     Euclidean distance between the endpoints, computed once at insertion.
//
// External ids:
//
//	– IDModeStrict (default)
//	    Ids are resolved through an ordered id→index map. Ids may be sparse or
//	    unordered; duplicate ids fail construction with ErrDuplicateVertexID.
//
//	– IDModePositional
//	    Ids are assumed to be exactly 1..N in load order (index = id - 1).
//
// Edge policy:
//
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Parallel edges are rejected; the first edge between a pair wins
//     (ErrMultiEdgeNotAllowed).
//   - Unresolvable ids leave the store untouched (ErrVertexNotFound); callers
//     are expected to report and skip the record.
//
// After loading, the store is read-only apart from Edge.InPath, which
// MarkPath rewrites in full on every call.
//
// Core Methods:
//
//	NewGraph(vs []Vertex, opts ...GraphOption) (*Graph, error)
//	AddEdge(uID, vID int) (*Edge, error)          // O(deg)
//	VertexCount() int / EdgeCount() int           // O(1)
//	Degree(v int) (int, error)                    // O(1)
//	Neighbors(v int) ([]Neighbor, error)          // O(deg), ascending by index
//	Edges() []*Edge                               // O(E), insertion order
//	EdgeBetween(u, v int) (*Edge, bool)           // O(1)
//	IndexOf(id int) (int, bool) / IDOf(i int)     // O(log V)
//	MarkPath(path []int) int / InPathCount() int  // O(E)
//	Stats() *GraphStats                           // O(E)
package core
