// SPDX-License-Identifier: MIT
// Package dijkstra_test validates Dijkstra and the id-level path API:
// input validation, the triangle scenarios, thresholds, and randomized
// comparison against gonum's path.DijkstraFrom.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/dijkstra"
)

const eps = 1e-9

// triangle returns 1:(0,0,0) 2:(3,0,0) 3:(3,4,0) 4:(9,9,9) with edges 1-2, 2-3
// and, if closed, 1-3. Vertex 4 is isolated.
func triangle(t testing.TB, closed bool) *core.Graph {
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

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t, false)
	_, err = dijkstra.Dijkstra(g, 4)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidVertex)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidVertex)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

type ScenarioSuite struct {
	suite.Suite
}

func (s *ScenarioSuite) TestOpenTriangle() {
	g := triangle(s.T(), false)

	p, err := dijkstra.ShortestPath(g, 1, 3)
	s.Require().NoError(err)
	s.InDelta(7.0, p.Distance, eps)
	s.Equal([]int{1, 2, 3}, p.IDs)
}

func (s *ScenarioSuite) TestClosedTriangleTakesHypotenuse() {
	g := triangle(s.T(), true)

	p, err := dijkstra.ShortestPath(g, 1, 3)
	s.Require().NoError(err)
	s.InDelta(5.0, p.Distance, eps)
	s.Equal([]int{1, 3}, p.IDs)
}

func (s *ScenarioSuite) TestIsolatedTargetIsNoPath() {
	g := triangle(s.T(), true)

	_, err := dijkstra.ShortestPath(g, 1, 4)
	s.ErrorIs(err, dijkstra.ErrNoPath)

	d, ids := dijkstra.Legacy(dijkstra.ShortestPath(g, 1, 4))
	s.Equal(-1.0, d)
	s.NotNil(ids)
	s.Empty(ids)
}

func (s *ScenarioSuite) TestInvalidEndpointIsSentinel() {
	g := triangle(s.T(), true)

	_, err := dijkstra.ShortestPath(g, 1, 42)
	s.ErrorIs(err, dijkstra.ErrInvalidVertex)
	_, err = dijkstra.ShortestPath(g, 0, 1)
	s.ErrorIs(err, dijkstra.ErrInvalidVertex)

	d, ids := dijkstra.Legacy(dijkstra.ShortestPath(g, 42, 1))
	s.Equal(dijkstra.NoPathDistance, d)
	s.Empty(ids)
}

func (s *ScenarioSuite) TestSelfPath() {
	g := triangle(s.T(), false)
	for id := 1; id <= 4; id++ {
		p, err := dijkstra.ShortestPath(g, id, id)
		s.Require().NoError(err)
		s.Equal(0.0, p.Distance)
		s.Equal([]int{id}, p.IDs)
	}
}

func (s *ScenarioSuite) TestMarkPathEdges() {
	g := triangle(s.T(), true)
	n, err := dijkstra.MarkPathEdges(g, []int{1, 2, 3})
	s.Require().NoError(err)
	s.Equal(2, n)
	s.Equal(2, g.InPathCount())

	p, err := dijkstra.ShortestPath(g, 1, 3)
	s.Require().NoError(err)
	s.Require().Len(p.Indices, len(p.IDs))
	for i, v := range p.Indices {
		id, err := g.IDOf(v)
		s.Require().NoError(err)
		s.Equal(p.IDs[i], id)
	}
	n, err = dijkstra.MarkPathEdges(g, p.IDs)
	s.Require().NoError(err)
	s.Equal(len(p.IDs)-1, n)
	e, ok := g.EdgeBetween(0, 2)
	s.Require().True(ok)
	s.True(e.InPath)

	// Unknown ids clear every flag.
	_, err = dijkstra.MarkPathEdges(g, []int{1, 99})
	s.ErrorIs(err, dijkstra.ErrInvalidVertex)
	s.Equal(0, g.InPathCount())

	// 1 and 4 are not adjacent: skipped silently.
	n, err = dijkstra.MarkPathEdges(g, []int{1, 4})
	s.Require().NoError(err)
	s.Equal(0, n)

	_, err = dijkstra.MarkPathEdges(nil, nil)
	s.ErrorIs(err, dijkstra.ErrNilGraph)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_ResultShape(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t, false), 0)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 3, 7}, res.Dist[:3], eps)
	assert.True(t, math.IsInf(res.Dist[3], 1))
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1, dijkstra.NoPredecessor}, res.Prev)
	assert.Equal(t, []bool{true, true, true, false}, res.Settled)
	assert.False(t, res.Reachable(3))

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = res.PathTo(7)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidVertex)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t, false), 0, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false}, res.Settled)

	res, err = dijkstra.Dijkstra(triangle(t, false), 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, res.Settled)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Hypotenuse (5) is a wall; the detour 3+4 is used instead.
	res, err := dijkstra.Dijkstra(triangle(t, true), 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.InDelta(t, 7.0, res.Dist[2], eps)

	p, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p)
}

func TestDijkstra_StopAt(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t, false), 0, dijkstra.WithStopAt(1))
	require.NoError(t, err)
	assert.True(t, res.Settled[1])
	assert.False(t, res.Settled[2])
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs
// ------------------------------------------------------------------------

// randomGraph scatters n points in a 10-unit cube and adds m random edges.
// It returns the store and an equivalent gonum graph keyed by internal index.
func randomGraph(t testing.TB, rng *rand.Rand, n, m int) (*core.Graph, *simple.WeightedUndirectedGraph) {
	t.Helper()
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.Vertex{ID: 100 + i, X: 10 * rng.Float64(), Y: 10 * rng.Float64(), Z: 10 * rng.Float64()}
	}
	g, err := core.NewGraph(vs)
	require.NoError(t, err)

	oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		oracle.AddNode(simple.Node(i))
	}
	for k := 0; k < m; k++ {
		e, err := g.AddEdge(100+rng.Intn(n), 100+rng.Intn(n))
		if err != nil {
			continue
		}
		oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
	}

	return g, oracle
}

func TestDijkstra_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(30)
		g, oracle := randomGraph(t, rng, n, 2*n)
		src := rng.Intn(n)

		res, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		want := path.DijkstraFrom(simple.Node(src), oracle)
		for v := 0; v < n; v++ {
			w := want.WeightTo(int64(v))
			if math.IsInf(w, 1) {
				assert.Falsef(t, res.Reachable(v), "trial %d v %d", trial, v)
				continue
			}
			assert.InDeltaf(t, w, res.Dist[v], 1e-6, "trial %d v %d", trial, v)
		}
	}
}

func TestShortestPath_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(20)
		g, _ := randomGraph(t, rng, n, n+rng.Intn(n))
		a, b := 100+rng.Intn(n), 100+rng.Intn(n)

		ab, errAB := dijkstra.ShortestPath(g, a, b)
		ba, errBA := dijkstra.ShortestPath(g, b, a)
		if errAB != nil {
			require.ErrorIs(t, errAB, dijkstra.ErrNoPath)
			require.ErrorIs(t, errBA, dijkstra.ErrNoPath)
			continue
		}
		require.NoError(t, errBA)

		// Symmetry.
		assert.InDeltaf(t, ab.Distance, ba.Distance, 1e-9, "trial %d", trial)

		// Endpoints and weight sum.
		assert.Equal(t, a, ab.IDs[0])
		assert.Equal(t, b, ab.IDs[len(ab.IDs)-1])
		sum := 0.0
		for i := 0; i+1 < len(ab.IDs); i++ {
			u, _ := g.IndexOf(ab.IDs[i])
			v, _ := g.IndexOf(ab.IDs[i+1])
			e, ok := g.EdgeBetween(u, v)
			require.Truef(t, ok, "trial %d: no edge %d-%d", trial, ab.IDs[i], ab.IDs[i+1])
			sum += e.Weight
		}
		assert.InDeltaf(t, ab.Distance, sum, 1e-9, "trial %d", trial)

		// Marking flags exactly len-1 edges.
		marked, err := dijkstra.MarkPathEdges(g, ab.IDs)
		require.NoError(t, err)
		assert.Equal(t, len(ab.IDs)-1, marked)
		assert.Equal(t, len(ab.IDs)-1, g.InPathCount())
	}
}
