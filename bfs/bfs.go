// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from internal index start,
// applying any number of functional Options.
// Edge weights are ignored; Depth counts hops.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res:   newResult(start, n),
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

func newResult(start, n int) *BFSResult {
	r := &BFSResult{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i] = Unvisited
		r.Parent[i] = Unvisited
	}

	return r
}

// enqueue marks v visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of v in ascending index order.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		if !w.opts.FilterNeighbor(v, nb.Vertex) {
			continue
		}
		if w.res.Depth[nb.Vertex] == Unvisited {
			w.enqueue(nb.Vertex, nextDepth, v)
		}
	}

	return nil
}
