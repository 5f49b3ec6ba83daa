// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade (Stats).
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time snapshot of store sizes, used for logging
// and quick assertions.
type GraphStats struct {
	IDMode      IDMode
	VertexCount int
	EdgeCount   int
	InPathCount int
	TotalWeight float64
}

// Stats produces a deterministic, read-only snapshot of the store.
//
// Implementation:
//   - Stage 1: Record the immutable vertex count and id mode.
//   - Stage 2: Under mu read lock, count edges, flagged edges and sum weights.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		IDMode:      g.mode,
		VertexCount: len(g.vertices),
	}

	g.mu.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
		if e.InPath {
			stats.InPathCount++
		}
	}
	g.mu.RUnlock()

	return &stats
}
