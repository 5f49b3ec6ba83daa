// SPDX-License-Identifier: MIT
// Package dfs implements cycle detection for undirected core.Graphs.
//
// A depth-first traversal with three-color marking finds a back edge
// exactly when the graph contains a cycle. HasCycle stops at the first one;
// FindCycle reconstructs it through the parent chain; FundamentalCycles
// returns one cycle per back edge, canonicalized via Booth's algorithm so
// the output is deterministic.
//
// Complexity:
//
//   - HasCycle, FindCycle: Time O(V + E), Memory O(V)
//   - FundamentalCycles:   Time O(V + E + B·L), Memory O(V + B·L)
//     (B = #back edges = E - V + C, L = avg cycle length)
package dfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/nodegraph/core"
)

// HasCycle reports whether g contains a cycle.
func HasCycle(g *core.Graph) (bool, error) {
	return HasCycleContext(context.Background(), g)
}

// HasCycleContext is HasCycle with cancellation.
func HasCycleContext(ctx context.Context, g *core.Graph) (bool, error) {
	res, err := firstBackEdge(ctx, g)
	if err != nil {
		return false, err
	}

	return len(res.BackEdges) > 0, nil
}

// FindCycle returns the external ids of one cycle of g as a closed walk
// [a, b, ..., a], or nil if g is acyclic. The cycle is the one closed by the
// first back edge of a full traversal in index order.
func FindCycle(g *core.Graph) ([]int, error) {
	res, err := firstBackEdge(context.Background(), g)
	if err != nil {
		return nil, err
	}
	if len(res.BackEdges) == 0 {
		return nil, nil
	}

	return toIDs(g, cycleOf(res, res.BackEdges[0]))
}

// FundamentalCycles returns one closed cycle of external ids per back edge of
// a full traversal. Each cycle is rotated and oriented to its lexicographically
// minimal form, and the list is sorted. The number of cycles equals the
// cyclomatic number E - V + C.
func FundamentalCycles(g *core.Graph) ([][]int, error) {
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	cycles := make([][]int, 0, len(res.BackEdges))
	for _, be := range res.BackEdges {
		ids, err := toIDs(g, cycleOf(res, be))
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, canonical(ids))
	}
	sort.Slice(cycles, func(i, j int) bool {
		return Compare(cycles[i], cycles[j]) < 0
	})

	return cycles, nil
}

// firstBackEdge runs a full traversal that stops at the first back edge.
func firstBackEdge(ctx context.Context, g *core.Graph) (*DFSResult, error) {
	return DFS(g, 0,
		WithContext(ctx),
		WithFullTraversal(),
		WithOnBackEdge(func(BackEdge) error { return ErrStop }),
	)
}

// cycleOf walks the tree from be.From up to the ancestor be.To and closes the
// loop, returning internal indices [To, ..., From, To].
func cycleOf(res *DFSResult, be BackEdge) []int {
	path := []int{be.From}
	for cur := be.From; cur != be.To; {
		cur = res.Parent[cur]
		path = append(path, cur)
	}
	cycle := Reverse(path)

	return append(cycle, be.To)
}

func toIDs(g *core.Graph, idx []int) ([]int, error) {
	out := make([]int, len(idx))
	for i, v := range idx {
		id, err := g.IDOf(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: cycle vertex %d: %w", v, err)
		}
		out[i] = id
	}

	return out, nil
}

// canonical picks the lexicographically minimal rotation of a closed cycle
// over both orientations and returns it closed again.
func canonical(cycle []int) []int {
	base := cycle[:len(cycle)-1]
	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))
	pick := rotF
	if Compare(rotB, rotF) < 0 {
		pick = rotB
	}

	return append(pick, pick[0])
}
