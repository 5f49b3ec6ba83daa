// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is settled at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to 2E pushes).
//	– Space: O(V + E)
//	   • O(V) for distance, predecessor and settled slices.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– StopAt:           stop as soon as the given vertex is settled.
//	– Context:          cancellation checked once per settled vertex.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrInvalidVertex   if a source, target or path id does not resolve.
//	– ErrNoPath          if the target is not reachable from the source.
//	– ErrNegativeWeight  if a negative or NaN edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option constructor).
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nodegraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidVertex indicates an id or index that does not resolve to a
	// vertex. It matches core.ErrVertexNotFound under errors.Is.
	ErrInvalidVertex = fmt.Errorf("dijkstra: invalid vertex: %w", core.ErrVertexNotFound)

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// StopAt           – internal index settled last; -1 (default) explores everything reachable.
type Options struct {
	Ctx              context.Context
	MaxDistance      float64
	InfEdgeThreshold float64
	StopAt           int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context checked once per settled vertex.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Must pass a positive value; zero, negative or NaN panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithStopAt ends the search once internal index target is settled.
// Distances of vertices not yet settled at that point stay provisional.
func WithStopAt(target int) Option {
	return func(o *Options) {
		o.StopAt = target
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults:
//   - Ctx:              context.Background()
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - StopAt:           -1 (no early stop).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		StopAt:           -1,
	}
}

// NoPredecessor marks Prev entries of the source and of unreached vertices.
const NoPredecessor = -1

// Result is the single-source outcome, indexed by internal vertex index.
type Result struct {
	// Source is the internal index the search started from.
	Source int

	// Dist[v] is the shortest distance from Source to v, +Inf if unreached.
	Dist []float64

	// Prev[v] is the predecessor of v on a shortest path, NoPredecessor for
	// Source and unreached vertices.
	Prev []int

	// Settled[v] reports whether Dist[v] is final.
	Settled []bool
}

// Reachable reports whether v was settled with a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Settled) && r.Settled[v]
}

// PathTo reconstructs the internal indices of a shortest path Source→target
// by following Prev backwards and reversing.
// Returns ErrInvalidVertex for an out-of-range target and ErrNoPath when
// target was not settled.
func (r *Result) PathTo(target int) ([]int, error) {
	if target < 0 || target >= len(r.Dist) {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidVertex, target)
	}
	if !r.Settled[target] {
		return nil, fmt.Errorf("%w: %d unreachable from %d", ErrNoPath, target, r.Source)
	}

	path := []int{target}
	for cur := target; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Path is a shortest path between two external ids.
type Path struct {
	// Distance is the sum of edge weights along IDs.
	Distance float64

	// IDs lists external vertex ids from source to target inclusive.
	IDs []int

	// Indices lists the same vertices as internal indices, ready for
	// core.Graph.MarkPath.
	Indices []int
}
