// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodegraph/analysis"
	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/builder"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/degree"
	"github.com/katalvlaran/nodegraph/dfs"
)

const eps = 1e-9

// store builds a graph from ds and requires every edge to be accepted.
func store(t *testing.T, ds *builder.Dataset) *core.Graph {
	t.Helper()
	g, diags, err := analysis.Build(ds.Vertices, ds.Edges)
	require.NoError(t, err)
	require.Empty(t, diags)

	return g
}

func TestShapes_Counts(t *testing.T) {
	cases := []struct {
		name   string
		con    builder.Constructor
		v, e   int
		cyclic bool
	}{
		{"path", builder.Path(4), 4, 3, false},
		{"cycle", builder.Cycle(5), 5, 5, true},
		{"star", builder.Star(5), 5, 4, false},
		{"complete", builder.Complete(5), 5, 10, true},
		{"grid 3x2x1", builder.Grid(3, 2, 1), 6, 7, true},
		{"grid 2x2x2", builder.Grid(2, 2, 2), 8, 12, true},
		{"single", builder.Path(1), 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := builder.Build(nil, tc.con)
			require.NoError(t, err)
			assert.Len(t, ds.Vertices, tc.v)
			assert.Len(t, ds.Edges, tc.e)

			g := store(t, ds)
			ok, err := bfs.IsConnected(g)
			require.NoError(t, err)
			assert.True(t, ok)
			has, err := dfs.HasCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.cyclic, has)
		})
	}
}

func TestLayoutWeights(t *testing.T) {
	ds, err := builder.Build([]builder.BuilderOption{builder.WithSpacing(2)}, builder.Path(3), builder.Cycle(4))
	require.NoError(t, err)
	g := store(t, ds)

	side := 2 * 2 * math.Sin(math.Pi/4)
	for _, e := range g.Edges() {
		if e.ID < 2 {
			assert.InDelta(t, 2.0, e.Weight, eps, "path edge %d", e.ID)
		} else {
			assert.InDelta(t, side, e.Weight, eps, "cycle edge %d", e.ID)
		}
	}
}

func TestComposeContinuesIDs(t *testing.T) {
	ds, err := builder.Build([]builder.BuilderOption{builder.WithFirstID(10)}, builder.Path(5), builder.Star(4))
	require.NoError(t, err)
	for i, v := range ds.Vertices {
		assert.Equal(t, 10+i, v.ID)
	}
	g := store(t, ds)

	cc, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 2, cc.Count)
	assert.Equal(t, []int{5, 4}, cc.Sizes)

	deg, err := degree.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3, deg.Max)
	assert.Equal(t, []int{5}, deg.MaxVertices(), "the star hub is loaded right after the path")
}

func TestRandomSparse(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithJitter(0.5)}
	a, err := builder.Build(opts, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithJitter(0.5)}
	b, err := builder.Build(opts, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same dataset")
	store(t, a)

	none, err := builder.Build(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Empty(t, none.Edges)

	all, err := builder.Build(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Len(t, all.Edges, 15)
}

func TestErrors(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"path":     builder.Path(0),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(2, 0, 2),
		"random":   builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.Build(nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
	_, err := builder.Build(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Build(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
}

func TestParse(t *testing.T) {
	assert.Equal(t, []string{"complete", "cycle", "grid", "path", "random", "star"}, builder.Shapes())

	con, err := builder.Parse("Grid", builder.ShapeParams{NX: 2, NY: 2, NZ: 1})
	require.NoError(t, err)
	ds, err := builder.Build(nil, con)
	require.NoError(t, err)
	assert.Len(t, ds.Edges, 4)

	_, err = builder.Parse("torus", builder.ShapeParams{})
	assert.ErrorIs(t, err, builder.ErrUnknownShape)
}
