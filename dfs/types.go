// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order and back-edge hooks, depth
// limiting, neighbor filtering, and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
type VertexState uint8

const (
	White VertexState = iota // White: the vertex has not been visited yet.
	Gray                     // Gray: the vertex is in the recursion stack (visiting).
	Black                    // Black: the vertex and all its descendants have been fully explored.
)

// String returns the color name.
func (s VertexState) String() string {
	switch s {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// NoParent marks Parent and ParentEdge entries of tree roots and unvisited vertices.
const NoParent = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// HasCycle, FindCycle or FundamentalCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// BackEdge is a non-tree edge from the vertex being explored to an ancestor
// that is still Gray. In an undirected graph every back edge closes a cycle.
type BackEdge struct {
	// From is the descendant (the vertex being explored).
	From int

	// To is the Gray ancestor.
	To int

	// Edge is the core.Edge ID.
	Edge int
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// OnBackEdge, if non-nil, is invoked for every back edge found.
	// Returning an error aborts traversal; ErrStop ends it early without error.
	OnBackEdge func(be BackEdge) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor index before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v int) bool

	// FullTraversal, if true, runs DFS from every White vertex in index order,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool
}

// ErrStop may be returned from a hook to end the traversal early.
// DFS then returns the partial result and a nil error.
var ErrStop = errors.New("dfs: stop")

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		OnBackEdge:     nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithOnBackEdge returns an Option that installs fn as a back-edge hook.
func WithOnBackEdge(fn func(be BackEdge) error) Option {
	return func(o *DFSOptions) {
		o.OnBackEdge = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor indices.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, the start argument is ignored and DFS restarts from each White
// vertex in ascending index order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// All per-vertex slices are indexed by internal vertex index.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Discovery records vertices in the sequence they were discovered (pre-order).
	Discovery []int

	// Depth is the tree depth of each visited vertex, NoParent if unvisited.
	Depth []int

	// Parent is the vertex each vertex was discovered from, NoParent for roots.
	Parent []int

	// ParentEdge is the ID of the tree edge used to reach each vertex.
	ParentEdge []int

	// State is the final color of every vertex. After a completed traversal
	// reached vertices are Black and unreached ones White.
	State []VertexState

	// BackEdges lists back edges in discovery order.
	BackEdges []BackEdge

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// Visited reports whether v was discovered.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.State) && r.State[v] != White
}
