// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, and Edge types of the
// analysis engine: an undirected, simple graph whose vertices carry 3D
// coordinates and whose edge weights are Euclidean distances computed at
// insertion time.
//
// This file declares Vertex, Edge, Neighbor, Graph, GraphOption, IDMode,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyInput          - NewGraph received no vertices.
//	ErrDuplicateVertexID   - two vertex records share one external id (strict mode).
//	ErrVertexNotFound      - an external id or internal index does not resolve.
//	ErrLoopNotAllowed      - an edge would connect a vertex to itself.
//	ErrMultiEdgeNotAllowed - an edge between the same unordered pair already exists.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyInput indicates that the store was built from an empty vertex sequence.
	ErrEmptyInput = errors.New("core: no vertices loaded")

	// ErrDuplicateVertexID indicates two vertex records with the same external id.
	ErrDuplicateVertexID = errors.New("core: duplicate vertex id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// IDMode selects how external vertex ids are mapped to internal indices.
type IDMode int

const (
	// IDModeStrict resolves external ids through an explicit id→index map.
	// Ids may be sparse, unordered, or start anywhere; duplicates are rejected.
	IDModeStrict IDMode = iota

	// IDModePositional names vertices by load position: external id k is
	// internal index k-1, whatever id the record carries. Kept for
	// compatibility with legacy record sets.
	IDModePositional
)

// String returns the lower-case mode name used in configuration files.
func (m IDMode) String() string {
	switch m {
	case IDModeStrict:
		return "strict"
	case IDModePositional:
		return "positional"
	default:
		return fmt.Sprintf("IDMode(%d)", int(m))
	}
}

// ParseIDMode converts a configuration string into an IDMode.
// The empty string selects IDModeStrict.
func ParseIDMode(s string) (IDMode, error) {
	switch s {
	case "", "strict":
		return IDModeStrict, nil
	case "positional":
		return IDModePositional, nil
	default:
		return IDModeStrict, fmt.Errorf("core: unknown id mode %q", s)
	}
}

// Vertex represents a node record.
//
// ID is the external identifier as given by the source record; it is
// decoupled from the internal index, which is the vertex's position in
// load order.
type Vertex struct {
	// ID is the external identifier.
	ID int

	// X, Y, Z are the vertex coordinates.
	X, Y, Z float64
}

// Edge represents an undirected connection between two internal indices.
//
// Everything but InPath is fixed at insertion time.
type Edge struct {
	// ID is the insertion ordinal of this edge (0-based).
	ID int

	// From and To are internal vertex indices, in the order given to AddEdge.
	From, To int

	// Weight is the Euclidean distance between the endpoints (always >= 0).
	Weight float64

	// InPath marks membership in the most recently marked path.
	InPath bool
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Neighbor is one adjacency entry: the adjacent vertex index and the
// connecting edge.
type Neighbor struct {
	Vertex int
	Edge   *Edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithIDMode sets how external ids map to internal indices.
// The default is IDModeStrict.
func WithIDMode(mode IDMode) GraphOption {
	return func(g *Graph) { g.mode = mode }
}

// pairKey is an unordered vertex pair, normalized so that lo <= hi.
type pairKey struct{ lo, hi int }

func newPairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is the in-memory graph store.
//
// Vertices are fixed at construction; edges are added afterwards and then
// only their InPath flag changes. mu guards edges, adjacency and flags.
type Graph struct {
	mu sync.RWMutex

	mode IDMode

	// Storage
	vertices []Vertex            // internal index → Vertex
	index    btree.Map[int, int] // external id → internal index (strict mode)
	edges    []*Edge             // edge ID → Edge
	adj      [][]Neighbor        // internal index → neighbors, ascending by Vertex
	pairs    map[pairKey]*Edge   // unordered pair → Edge
}

// NewGraph builds a store sized to len(vertices).
// The vertex slice is copied; the caller keeps ownership of its argument.
//
// Returns ErrEmptyInput for an empty sequence, and ErrDuplicateVertexID when
// two records share an external id in IDModeStrict.
// Complexity: O(V log V).
func NewGraph(vertices []Vertex, opts ...GraphOption) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyInput
	}

	g := &Graph{
		vertices: make([]Vertex, len(vertices)),
		adj:      make([][]Neighbor, len(vertices)),
		pairs:    make(map[pairKey]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	copy(g.vertices, vertices)

	if g.mode == IDModeStrict {
		for i, v := range g.vertices {
			if prev, dup := g.index.Set(v.ID, i); dup {
				return nil, fmt.Errorf("%w: id %d at indices %d and %d", ErrDuplicateVertexID, v.ID, prev, i)
			}
		}
	}

	return g, nil
}
