// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodegraph/core"
)

// Common external ids used across core tests.
const (
	ID1 = 1
	ID2 = 2
	ID3 = 3
	ID4 = 4

	IDMissing = 99
)

// Common weights of the right-triangle fixture (3-4-5).
const (
	Weight12 = 3.0
	Weight23 = 4.0
	Weight13 = 5.0
)

// Tolerance for floating-point weight comparisons.
const eps = 1e-9

// triangleVertices returns the 3-4-5 right triangle plus one far-away vertex:
//
//	1:(0,0,0)  2:(3,0,0)  3:(3,4,0)  4:(10,10,10)
func triangleVertices() []core.Vertex {
	return []core.Vertex{
		{ID: ID1, X: 0, Y: 0, Z: 0},
		{ID: ID2, X: 3, Y: 0, Z: 0},
		{ID: ID3, X: 3, Y: 4, Z: 0},
		{ID: ID4, X: 10, Y: 10, Z: 10},
	}
}

// mustGraph builds a store from vs and fails the test on error.
func mustGraph(t *testing.T, vs []core.Vertex, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(vs, opts...)
	require.NoError(t, err, "NewGraph")

	return g
}

// mustEdges adds each (u,v) pair and fails the test on the first error.
func mustEdges(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoErrorf(t, err, "AddEdge(%d,%d)", p[0], p[1])
	}
}
