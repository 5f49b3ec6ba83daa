// SPDX-License-Identifier: MIT
// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Tri-state coloring held in DFSResult.State, owned by the traversal call
//   - Hooks: OnVisit (pre‑order), OnExit (post‑order), OnBackEdge, with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and per-vertex slices.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth‑first search on graph g from internal index start.
// If opts include WithFullTraversal, it covers all components in index order
// and start is ignored.
//
// The edge used to arrive at a vertex is never treated as a back edge; any
// other edge to a Gray vertex is. Since the store holds a simple graph, this
// is equivalent to skipping the parent vertex.
//
// Returns the (possibly partial) DFSResult and an error if aborted by context
// or hook. A hook returning ErrStop ends the traversal with a nil error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single‑source mode: verify start
	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	res := newResult(n)
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	var err error
	if dopts.FullTraversal {
		for v := 0; v < n && err == nil; v++ {
			if res.State[v] == White {
				err = walker.traverse(v, NoParent, 0)
			}
		}
	} else {
		err = walker.traverse(start, NoParent, 0)
	}
	if errors.Is(err, ErrStop) {
		err = nil
	}

	return res, err
}

func newResult(n int) *DFSResult {
	res := &DFSResult{
		Order:      make([]int, 0, n),
		Discovery:  make([]int, 0, n),
		Depth:      make([]int, n),
		Parent:     make([]int, n),
		ParentEdge: make([]int, n),
		State:      make([]VertexState, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = NoParent
		res.Parent[i] = NoParent
		res.ParentEdge[i] = NoParent
	}

	return res
}

// traverse visits vertex v, reached through edge parentEdge, at the given depth.
func (w *dfsWalker) traverse(v, parentEdge, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark Gray and record discovery
	w.res.State[v] = Gray
	w.res.Depth[v] = depth
	w.res.Discovery = append(w.res.Discovery, v)

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Fetch neighbors once (ascending by index)
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}

	// 5. Explore each neighbor
	for _, nb := range nbs {
		// Never walk back along the arrival edge
		if nb.Edge.ID == parentEdge {
			continue
		}

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.Vertex) {
			w.res.SkippedNeighbors++
			continue
		}

		switch w.res.State[nb.Vertex] {
		case White:
			if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nb.Vertex] = v
			w.res.ParentEdge[nb.Vertex] = nb.Edge.ID
			if err = w.traverse(nb.Vertex, nb.Edge.ID, depth+1); err != nil {
				return err
			}
		case Gray:
			be := BackEdge{From: v, To: nb.Vertex, Edge: nb.Edge.ID}
			w.res.BackEdges = append(w.res.BackEdges, be)
			if w.opts.OnBackEdge != nil {
				if err = w.opts.OnBackEdge(be); err != nil {
					return fmt.Errorf("dfs: OnBackEdge hook for %d-%d: %w", be.From, be.To, err)
				}
			}
		case Black:
			// descendant already finished: this edge was seen from the other side
		}
	}

	// 6. Post‑order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 7. Mark Black and record finish order
	w.res.State[v] = Black
	w.res.Order = append(w.res.Order, v)

	return nil
}
