// SPDX-License-Identifier: MIT
// Package dfs implements depth‑first search traversal and cycle detection
// on an undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking and returns the full trace (pre-/post-order, parents,
//     tree edges, final colors, back edges). Supports:
//   - Pre‑order, post‑order and back-edge hooks
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Forest traversal over every component
//   - HasCycle: true iff a full traversal finds a back edge. The edge used
//     to arrive at a vertex is excluded, so a single edge is never a cycle.
//   - FindCycle: one witness cycle as external ids [a, ..., a].
//   - FundamentalCycles: one canonical cycle per back edge (E - V + C in total).
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - BackEdge: descendant, Gray ancestor and edge ID
//   - Option / DFSOptions: Context, hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: Order, Discovery, Depth, Parent, ParentEdge, State, BackEdges
//
// The color state lives in DFSResult.State and is created per call, so
// concurrent traversals over the same store do not interfere.
//
// Complexity:
//
//   - DFS, HasCycle, FindCycle: Time O(V+E), Memory O(V)
//   - FundamentalCycles:        Time O(V+E + B·L), B = #back edges
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index out of range
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit, OnExit or OnBackEdge
//     (ErrStop ends the walk early with a nil error)
package dfs
