// SPDX-License-Identifier: MIT
// Package forest provides an implementation of Prim's algorithm that grows
// the minimum spanning tree of one component from a root vertex using a min‐heap.
package forest

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
)

// Prim computes the minimum spanning tree of the component containing
// internal index root. The result has Components == 1.
//
// Steps:
//  1. Mark root visited and push all its incident edges.
//  2. Pop the lightest edge; skip it if its far end is already visited.
//  3. Otherwise accept it, mark the far end and push its edges to
//     unvisited neighbors.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: index %d", ErrRootNotFound, root)
	}

	visited := make([]bool, n)
	f := &Forest{Components: 1}
	pq := &edgePQ{}
	heap.Init(pq)

	visit := func(v int) error {
		visited[v] = true
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if !visited[nb.Vertex] {
				heap.Push(pq, primItem{edge: nb.Edge, to: nb.Vertex})
			}
		}

		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(primItem)
		if visited[it.to] {
			continue
		}
		f.Edges = append(f.Edges, it.edge)
		f.Weight += it.edge.Weight
		if err := visit(it.to); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// primItem is a candidate edge and the endpoint it would add.
type primItem struct {
	edge *core.Edge
	to   int
}

// edgePQ implements heap.Interface for a min‐heap of primItem ordered by
// (Weight, Edge.ID).
type edgePQ []primItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(primItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
