// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/core"
)

func TestComponents_NilGraph(t *testing.T) {
	_, err := bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.IsConnected(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestComponents_TwoTriangles: 1-2-3 and 4-5-6 with no edge between them.
func TestComponents_TwoTriangles(t *testing.T) {
	g := build(t, 6,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1},
		[2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4},
	)

	cc, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 2, cc.Count)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, cc.Label)
	assert.Equal(t, []int{3, 3}, cc.Sizes)
	assert.Equal(t, []int{3, 4, 5}, cc.Members(1))
	assert.Empty(t, cc.Members(2))

	ok, err := bfs.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsConnected_SingleVertex(t *testing.T) {
	g := build(t, 1)
	ok, err := bfs.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsConnected_IsolatedVertex(t *testing.T) {
	g := build(t, 3, [2]int{1, 2})
	ok, err := bfs.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComponents_Cancelled(t *testing.T) {
	g := build(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.ComponentsContext(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

// TestComponents_MatchesGonum compares component counts and partitions
// with gonum's topo.ConnectedComponents on random sparse graphs.
func TestComponents_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(40)
		vs := make([]core.Vertex, n)
		for i := range vs {
			vs[i] = core.Vertex{ID: i + 1, X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
		}
		g, err := core.NewGraph(vs)
		require.NoError(t, err)

		oracle := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			oracle.AddNode(simple.Node(i))
		}
		for k := 0; k < n; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if _, err := g.AddEdge(u+1, v+1); err != nil {
				continue
			}
			oracle.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}

		cc, err := bfs.Components(g)
		require.NoError(t, err)
		want := topo.ConnectedComponents(oracle)
		require.Equal(t, len(want), cc.Count, "trial %d", trial)

		// Same partition: every gonum component maps to exactly one label.
		for _, comp := range want {
			label := cc.Label[int(comp[0].ID())]
			for _, node := range comp {
				assert.Equal(t, label, cc.Label[int(node.ID())], "trial %d", trial)
			}
			assert.Equal(t, len(comp), cc.Sizes[label], "trial %d", trial)
		}
	}
}
