// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected-component labelling and IsConnected.
// Determinism:
//   - Seeds are taken in ascending index order, so component numbers are stable.

package bfs

import (
	"context"

	"github.com/katalvlaran/nodegraph/core"
)

// Components labels every vertex of g with its connected component by
// restarting BFS from each vertex not yet labelled, in index order.
// Complexity: O(V + E).
func Components(g *core.Graph) (*ComponentsResult, error) {
	return ComponentsContext(context.Background(), g)
}

// ComponentsContext is Components with cancellation checked between seeds
// and inside each BFS.
func ComponentsContext(ctx context.Context, g *core.Graph) (*ComponentsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	res := &ComponentsResult{Label: make([]int, n)}
	for i := range res.Label {
		res.Label[i] = Unvisited
	}

	for seed := 0; seed < n; seed++ {
		if res.Label[seed] != Unvisited {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := res.Count
		size := 0
		_, err := BFS(g, seed,
			WithContext(ctx),
			WithOnVisit(func(v int, _ int) error {
				res.Label[v] = c
				size++

				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
		res.Sizes = append(res.Sizes, size)
		res.Count++
	}

	return res, nil
}

// IsConnected reports whether every vertex of g is reachable from every other,
// i.e. whether g has exactly one connected component.
func IsConnected(g *core.Graph) (bool, error) {
	res, err := Components(g)
	if err != nil {
		return false, err
	}

	return res.Count == 1, nil
}
