// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodegraph/analysis"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/export"
	"github.com/katalvlaran/nodegraph/loader"
)

// analyzed returns the 3-4-5 triangle on ids 1..3 plus isolated id 4, with
// the query 1->3 marked.
func analyzed(t *testing.T) (*core.Graph, *analysis.Report) {
	t.Helper()
	vs := []core.Vertex{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 3, Y: 0, Z: 0},
		{ID: 3, X: 3, Y: 4, Z: 0},
		{ID: 4, X: 10, Y: 10, Z: 10},
	}
	es := []loader.EdgeRecord{{Source: 1, Target: 2}, {Source: 2, Target: 3}, {Source: 1, Target: 3}}
	g, diags, err := analysis.Build(vs, es)
	require.NoError(t, err)
	require.Empty(t, diags)

	rep, err := analysis.Analyze(context.Background(), g, analysis.Request{
		Query: &analysis.Pair{Source: 1, Target: 3},
		Pairs: []analysis.Pair{{Source: 1, Target: 3}, {Source: 1, Target: 4}},
	})
	require.NoError(t, err)

	return g, rep
}

const wantReport = `=== GRAPH ANALYSIS REPORT ===
Vertices: 4
Edges: 3

== i. Vertex degree ==
Vertex 1: 2
Vertex 2: 2
Vertex 3: 2
Vertex 4: 0
Graph degree: 2

== ii. Connectivity ==
The graph is not connected (2 components)
  component 1: 1 2 3
  component 2: 4
Diameter: 5.00 (1 -> 3)

== iii. Cycle detection ==
The graph contains a cycle
Witness: 1 -> 2 -> 3 -> 1
Independent cycles: 1
How cycles are detected:
1. The graph is traversed depth-first from every unvisited vertex.
2. Each vertex is white (unvisited), gray (on the current path) or black (finished).
3. An edge to a gray vertex, other than the edge just arrived by, is a back edge.
4. A back edge closes a cycle; the witness is the tree path plus that edge.

== iv. Minimum spanning forest ==
Trees: 2
Edges: 2
Weight: 7.00

== v. Shortest path ==
  * source: 1
  * target: 3
Length = 5.00
Path: 1 -> 3

== vi. Path table ==
Pairs: 2, with path: 1

== Diagnostics ==
- no_path: no path between 1 and 4
`

func TestWriteReport_Plain(t *testing.T) {
	_, rep := analyzed(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteReport(&buf, rep, export.WithTimings(false)))
	assert.Equal(t, wantReport, buf.String())
}

func TestWriteReport_TimingsAndStyle(t *testing.T) {
	_, rep := analyzed(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteReport(&buf, rep, export.WithStyle(true)))
	out := buf.String()
	assert.Contains(t, out, "GRAPH ANALYSIS REPORT")
	assert.Contains(t, out, rep.RunID)
	assert.Contains(t, out, "vii. Timing")
	assert.Contains(t, out, "Total: ")
	for _, ph := range []string{analysis.PhaseDegree, analysis.PhaseQuery, analysis.PhasePaths} {
		assert.Contains(t, out, ph+":")
	}
}

func TestWriteReport_NoPathQuery(t *testing.T) {
	g, _ := analyzed(t)
	rep, err := analysis.Analyze(context.Background(), g, analysis.Request{
		Query: &analysis.Pair{Source: 4, Target: 1},
		Pairs: []analysis.Pair{},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteReport(&buf, rep, export.WithTimings(false)))
	assert.Contains(t, buf.String(), "No path found")
	assert.NotContains(t, buf.String(), "vi. Path table")
}

func TestSummary(t *testing.T) {
	_, rep := analyzed(t)
	assert.Equal(t, "V=4 E=3 components=2 cycle=true path=5.00", export.Summary(rep))
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "1->2->3", export.FormatPath([]int{1, 2, 3}, export.CSVArrow))
	assert.Equal(t, "7", export.FormatPath([]int{7}, export.ReportArrow))
	assert.Equal(t, "", export.FormatPath(nil, export.CSVArrow))
	assert.Equal(t, "-1.00", export.FormatDistance(-1))
	assert.Equal(t, "5.00", export.FormatDistance(4.999))
}

func TestWritePathsCSV(t *testing.T) {
	_, rep := analyzed(t)

	var buf bytes.Buffer
	require.NoError(t, export.WritePathsCSV(&buf, rep.Paths))
	assert.Equal(t,
		"SourceNodeID;TargetNodeID;PathLength;Path\n"+
			"1;3;5.00;1->3\n"+
			"1;4;-1.00;No path\n",
		buf.String())
}

func TestWritePathsCSVFile(t *testing.T) {
	_, rep := analyzed(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "paths.csv")
	require.NoError(t, export.WritePathsCSVFile(path, rep.Paths))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "SourceNodeID;"))

	err = export.WritePathsCSVFile(filepath.Join(dir, "missing", "paths.csv"), rep.Paths)
	assert.ErrorIs(t, err, export.ErrResource)
}

func TestWriteDOT(t *testing.T) {
	g, _ := analyzed(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, g))
	out := buf.String()

	assert.Contains(t, out, "graph G {")
	assert.Contains(t, out, "0 -- 2")
	for _, w := range []string{"label=3.00", "label=4.00", "label=5.00", "penwidth=2"} {
		assert.Contains(t, out, w)
	}
	assert.Equal(t, g.InPathCount(), strings.Count(out, "color=red"))
	assert.NotContains(t, out, "->", "undirected graphs use --")

	// Clearing the marks removes the highlight.
	g.MarkPath(nil)
	buf.Reset()
	require.NoError(t, export.WriteDOT(&buf, g))
	assert.NotContains(t, buf.String(), "color=red")

	assert.ErrorIs(t, export.WriteDOT(&buf, nil), export.ErrResource)
}

// TestWriteDOT_NodeNamesAreIndices keeps vertices with equal record ids
// apart in the diagram; labels carry the external id.
func TestWriteDOT_NodeNamesAreIndices(t *testing.T) {
	for _, tc := range []struct {
		name     string
		mode     core.IDMode
		vertices []core.Vertex
		edges    []loader.EdgeRecord
		labels   []string
	}{
		{
			name:     "positional with repeated record ids",
			mode:     core.IDModePositional,
			vertices: []core.Vertex{{ID: 7}, {ID: 7, X: 1}, {ID: 9, X: 2}},
			edges:    []loader.EdgeRecord{{Source: 1, Target: 2}, {Source: 2, Target: 3}},
			labels:   []string{"label=1]", "label=2]", "label=3]"},
		},
		{
			name:     "strict with sparse ids",
			mode:     core.IDModeStrict,
			vertices: []core.Vertex{{ID: 7}, {ID: 40, X: 1}, {ID: 9, X: 2}},
			edges:    []loader.EdgeRecord{{Source: 7, Target: 40}, {Source: 40, Target: 9}},
			labels:   []string{"label=7]", "label=40]", "label=9]"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, diags, err := analysis.Build(tc.vertices, tc.edges, analysis.WithIDMode(tc.mode))
			require.NoError(t, err)
			require.Empty(t, diags)

			var buf bytes.Buffer
			require.NoError(t, export.WriteDOT(&buf, g))
			out := buf.String()
			assert.Contains(t, out, "0 -- 1")
			assert.Contains(t, out, "1 -- 2")
			assert.NotContains(t, out, "7 -- 7")
			for _, l := range tc.labels {
				assert.Equal(t, 1, strings.Count(out, l), l)
			}
		})
	}
}

func TestWriteDOTFile(t *testing.T) {
	g, _ := analyzed(t)
	dir := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(dir, "graph.dot")
	require.NoError(t, export.WriteDOTFile(ctx, path, g))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, export.WriteDOT(&want, g))
	assert.Equal(t, want.String(), string(raw))

	err = export.WriteDOTFile(ctx, filepath.Join(dir, "graph.png"), g,
		export.WithDotBinary("nodegraph-no-such-graphviz"))
	assert.ErrorIs(t, err, export.ErrResource)

	err = export.WriteDOTFile(ctx, filepath.Join(dir, "missing", "graph.dot"), g)
	assert.ErrorIs(t, err, export.ErrResource)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, export.IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, export.IsTerminal(f))
}
