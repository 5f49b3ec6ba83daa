// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph whose edge weights are Euclidean distances.
//
// It settles vertices in order of increasing distance using a min-heap,
// relaxing incident edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries are ordered by (distance, index), so ties settle the lower index first.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/nodegraph/core"
)

// Dijkstra computes shortest distances from internal index source to all
// other vertices of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a valid index (ErrInvalidVertex).
//  3. No edge in g can have a negative or NaN weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source index %d", ErrInvalidVertex, source)
	}

	// 3) Pre-scan all edges to detect bad weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:  source,
			Dist:    make([]float64, n),
			Prev:    make([]int, n),
			Settled: make([]bool, n),
		},
		pq: make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (thresholds, stop, context).
	res     *Result     // Dist, Prev and Settled under construction.
	pq      nodePQ      // Min-heap of nodeItem for lazy priority queue.
}

// init sets dist to +Inf everywhere but the source and pushes the source.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = NoPredecessor
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.res.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum distance and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The StopAt vertex has been settled.
//   - The context is done.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.res.Settled[u] {
			continue
		}

		// 2) Beyond MaxDistance nothing else can be settled.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 3) u is final.
		r.res.Settled[u] = true
		if u == r.options.StopAt {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes Dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	dist := r.res.Dist
	for _, nb := range neighbors {
		v, w := nb.Vertex, nb.Edge.Weight
		if r.res.Settled[v] || w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal-length alternatives keep the first predecessor.
		if newDist >= dist[v] {
			continue
		}

		dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int     // internal vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
// Outdated entries remain in the heap and are ignored when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
