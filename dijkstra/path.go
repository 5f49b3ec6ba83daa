// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: External-id shortest path queries and path marking.
//   - ShortestPath resolves ids, runs Dijkstra with an early stop and
//     returns distance plus id sequence.
//   - Legacy converts a (Path, error) pair into the (-1, []) sentinel form
//     used by report and CSV output.
//   - MarkPathEdges flags the edges of an id path in the store.

package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
)

// NoPathDistance is the distance reported by Legacy when no path exists.
const NoPathDistance = -1.0

// ShortestPath returns the shortest path between external ids sourceID and
// targetID.
//
// Errors:
//   - ErrNilGraph      g is nil.
//   - ErrInvalidVertex either id does not resolve.
//   - ErrNoPath        target is unreachable from source.
//
// sourceID == targetID yields Path{0, [sourceID]}.
func ShortestPath(g *core.Graph, sourceID, targetID int) (Path, error) {
	return ShortestPathContext(context.Background(), g, sourceID, targetID)
}

// ShortestPathContext is ShortestPath with cancellation.
func ShortestPathContext(ctx context.Context, g *core.Graph, sourceID, targetID int) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	s, ok := g.IndexOf(sourceID)
	if !ok {
		return Path{}, fmt.Errorf("%w: source id %d", ErrInvalidVertex, sourceID)
	}
	t, ok := g.IndexOf(targetID)
	if !ok {
		return Path{}, fmt.Errorf("%w: target id %d", ErrInvalidVertex, targetID)
	}

	res, err := Dijkstra(g, s, WithContext(ctx), WithStopAt(t))
	if err != nil {
		return Path{}, err
	}
	idx, err := res.PathTo(t)
	if err != nil {
		return Path{}, fmt.Errorf("%w: ids %d-%d", ErrNoPath, sourceID, targetID)
	}

	ids := make([]int, len(idx))
	for i, v := range idx {
		if ids[i], err = g.IDOf(v); err != nil {
			return Path{}, err
		}
	}

	return Path{Distance: res.Dist[t], IDs: ids, Indices: idx}, nil
}

// Legacy maps a ShortestPath outcome to the flat (distance, ids) form.
// Any error yields (NoPathDistance, []int{}).
func Legacy(p Path, err error) (float64, []int) {
	if err != nil {
		return NoPathDistance, []int{}
	}

	return p.Distance, p.IDs
}

// MarkPathEdges flags the edges between consecutive ids of path in g and
// clears every other InPath flag. Pairs without a joining edge are skipped.
// Returns the number of edges flagged.
//
// If any id does not resolve, all flags are cleared and ErrInvalidVertex is
// returned.
func MarkPathEdges(g *core.Graph, path []int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	idx := make([]int, len(path))
	for i, id := range path {
		v, ok := g.IndexOf(id)
		if !ok {
			g.MarkPath(nil)

			return 0, fmt.Errorf("%w: path id %d", ErrInvalidVertex, id)
		}
		idx[i] = v
	}

	return g.MarkPath(idx), nil
}
