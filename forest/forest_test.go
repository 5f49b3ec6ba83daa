// SPDX-License-Identifier: MIT
package forest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/dfs"
	"github.com/katalvlaran/nodegraph/forest"
)

const eps = 1e-9

func triangle(t *testing.T, closed bool) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Vertex{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 3, Y: 0, Z: 0},
		{ID: 3, X: 3, Y: 4, Z: 0},
		{ID: 4, X: 9, Y: 9, Z: 9},
	})
	require.NoError(t, err)
	edges := [][2]int{{1, 2}, {2, 3}}
	if closed {
		edges = append(edges, [2]int{1, 3})
	}
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestUnionFind(t *testing.T) {
	uf := forest.NewUnionFind(5)
	assert.Equal(t, 5, uf.Count())
	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(3, 4))
	assert.False(t, uf.Union(1, 0))
	assert.True(t, uf.Union(1, 4))
	assert.Equal(t, 2, uf.Count())
	assert.True(t, uf.Connected(0, 3))
	assert.False(t, uf.Connected(2, 0))
}

func TestNilGraph(t *testing.T) {
	_, err := forest.Kruskal(nil)
	assert.ErrorIs(t, err, forest.ErrGraphNil)
	_, err = forest.Prim(nil, 0)
	assert.ErrorIs(t, err, forest.ErrGraphNil)
	_, err = forest.CyclomaticNumber(nil)
	assert.ErrorIs(t, err, forest.ErrGraphNil)
}

func TestKruskal_Triangle(t *testing.T) {
	f, err := forest.Kruskal(triangle(t, true))
	require.NoError(t, err)
	// Lightest two edges: 1-2 (3) and 2-3 (4); the hypotenuse closes a cycle.
	require.Equal(t, 2, f.Len())
	assert.InDelta(t, 7.0, f.Weight, eps)
	assert.Equal(t, 2, f.Components, "vertex 4 is its own tree")
	assert.Equal(t, 0, f.Edges[0].ID)
	assert.Equal(t, 1, f.Edges[1].ID)
}

func TestPrim_Triangle(t *testing.T) {
	g := triangle(t, true)
	f, err := forest.Prim(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.InDelta(t, 7.0, f.Weight, eps)

	f, err = forest.Prim(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())

	_, err = forest.Prim(g, 4)
	assert.ErrorIs(t, err, forest.ErrRootNotFound)
}

func TestCyclomaticNumber(t *testing.T) {
	c, err := forest.CyclomaticNumber(triangle(t, false))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = forest.CyclomaticNumber(triangle(t, true))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestRandom_CrossCheck compares Kruskal against gonum's path.Kruskal, the
// sum of per-component Prim trees, and the cycle detector.
func TestRandom_CrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(30)
		vs := make([]core.Vertex, n)
		for i := range vs {
			vs[i] = core.Vertex{ID: i + 1, X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10}
		}
		g, err := core.NewGraph(vs)
		require.NoError(t, err)
		oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			oracle.AddNode(simple.Node(i))
		}
		for k := 0; k < 2*n; k++ {
			e, err := g.AddEdge(1+rng.Intn(n), 1+rng.Intn(n))
			if err != nil {
				continue
			}
			oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
		}

		f, err := forest.Kruskal(g)
		require.NoError(t, err)
		want := path.Kruskal(simple.NewWeightedUndirectedGraph(0, math.Inf(1)), oracle)
		assert.InDeltaf(t, want, f.Weight, 1e-6, "trial %d", trial)

		cc, err := bfs.Components(g)
		require.NoError(t, err)
		assert.Equal(t, cc.Count, f.Components)
		assert.Equal(t, n-cc.Count, f.Len())

		primSum := 0.0
		seen := map[int]bool{}
		for v := 0; v < n; v++ {
			if seen[cc.Label[v]] {
				continue
			}
			seen[cc.Label[v]] = true
			p, err := forest.Prim(g, v)
			require.NoError(t, err)
			assert.Equal(t, cc.Sizes[cc.Label[v]]-1, p.Len())
			primSum += p.Weight
		}
		assert.InDeltaf(t, f.Weight, primSum, 1e-6, "trial %d", trial)

		cyc, err := forest.CyclomaticNumber(g)
		require.NoError(t, err)
		has, err := dfs.HasCycle(g)
		require.NoError(t, err)
		assert.Equal(t, cyc > 0, has, "trial %d", trial)
	}
}
