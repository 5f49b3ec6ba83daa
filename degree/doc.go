// SPDX-License-Identifier: MIT
//
// Package degree computes the degree of every vertex in a core.Graph and the
// maximum degree of the graph.
//
// For an undirected simple graph the degree of v is the number of edges
// incident to v, which is exactly len(Neighbors(v)). The handshake lemma
// holds for every result:
//
//	Sum() == 2 * g.EdgeCount()
//
// Determinism
//
//	PerVertex is indexed by internal vertex index (load order), so repeated
//	runs over the same store return identical slices.
//
// Complexity
//
//   - Time:   O(V)
//   - Memory: O(V)
//
// Usage
//
//	res, err := degree.Compute(g)
//	if err != nil {
//	    // ErrGraphNil
//	}
//	fmt.Println(res.Max, res.ByID(g)[42])
package degree
