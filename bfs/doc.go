// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search and connected-component
// labelling over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start vertex
//     and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, Unvisited if unreached
//   - Parent: vertex → predecessor in the BFS tree
//   - Components restarts BFS from every unlabelled vertex in index order and
//     returns a ComponentsResult (Label, Sizes, Count).
//   - IsConnected is Components(g).Count == 1.
//
// Edge weights are ignored: connectivity does not depend on distance.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors ascending by index and BFS enqueues
//	them in that order, so the visit sequence and component numbering are
//	fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
//	cc, err := bfs.Components(g)
//	fmt.Println(cc.Count == 1)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
