// SPDX-License-Identifier: MIT
// Package forest computes minimum spanning forests and the cyclomatic number
// of an undirected, Euclidean-weighted core.Graph.
//
// What
//
//   - UnionFind: disjoint sets over internal indices (path halving, union by rank).
//   - Kruskal(g): minimum spanning forest; one tree per connected component.
//   - Prim(g, root): minimum spanning tree of root's component.
//   - CyclomaticNumber(g): E - V + C, the count of independent cycles.
//
// For a simple graph CyclomaticNumber(g) > 0 exactly when g has a cycle, which
// gives an oracle independent of depth-first back-edge detection.
//
// Complexity
//
//   - Kruskal:          O(E log E)
//   - Prim:             O(E log V)
//   - CyclomaticNumber: O(E·α(V))
//
// Errors
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrRootNotFound   Prim root index out of range
package forest
