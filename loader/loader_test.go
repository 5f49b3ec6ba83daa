// SPDX-License-Identifier: MIT
package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/loader"
)

func TestLoadNodes(t *testing.T) {
	in := "id;x;y;z\n" +
		"1;0;0;0\n" +
		"2; 3.5;0\n" + // z missing
		"3\n" + // all coordinates missing
		"x;1;2;3\n" + // bad id
		"4;1;NaN;0\n" + // bad coordinate
		"\n" +
		"5;-1e2;2;3;extra\r\n"

	nodes, rowErrs, err := loader.LoadNodes(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{
		{ID: 1},
		{ID: 2, X: 3.5},
		{ID: 3},
		{ID: 5, X: -100, Y: 2, Z: 3},
	}, nodes)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 5, rowErrs[0].Line)
	assert.ErrorIs(t, rowErrs[0], loader.ErrMalformedRow)
	assert.Equal(t, 6, rowErrs[1].Line)
	assert.Contains(t, rowErrs[1].Error(), "line 6")
}

func TestLoadNodes_HeaderOnly(t *testing.T) {
	nodes, rowErrs, err := loader.LoadNodes(strings.NewReader("id;x;y;z\n"))
	require.NoError(t, err)
	assert.Empty(t, nodes)
	assert.Empty(t, rowErrs)

	nodes, _, err = loader.LoadNodes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestLoadEdges(t *testing.T) {
	in := "source;target\n1;2\n2;3;ignored\n7\n3;y\n"
	edges, rowErrs, err := loader.LoadEdges(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []loader.EdgeRecord{{Source: 1, Target: 2}, {Source: 2, Target: 3}}, edges)
	require.Len(t, rowErrs, 2)
	assert.Equal(t, 4, rowErrs[0].Line)
	assert.Equal(t, 5, rowErrs[1].Line)
}

func TestWithSeparator(t *testing.T) {
	edges, _, err := loader.LoadEdges(strings.NewReader("a,b\n4,5\n"), loader.WithSeparator(','))
	require.NoError(t, err)
	assert.Equal(t, []loader.EdgeRecord{{Source: 4, Target: 5}}, edges)

	// Invalid separators keep the default.
	edges, _, err = loader.LoadEdges(strings.NewReader("a;b\n4;5\n"), loader.WithSeparator('\n'))
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.csv")
	edgesPath := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(nodesPath, []byte("id;x;y;z\n1;0;0;0\n2;3;4;0\n"), 0o600))
	require.NoError(t, os.WriteFile(edgesPath, []byte("s;t\n1;2\n"), 0o600))

	nodes, _, err := loader.LoadNodesFile(nodesPath)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	edges, _, err := loader.LoadEdgesFile(edgesPath)
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	_, _, err = loader.LoadNodesFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, loader.ErrOpen)
	_, _, err = loader.LoadEdgesFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, loader.ErrOpen)
}

func TestWriteRoundTrip(t *testing.T) {
	vs := []core.Vertex{{ID: 3, X: 1.5, Y: -2, Z: 1e-3}, {ID: 7}}
	es := []loader.EdgeRecord{{Source: 3, Target: 7}}

	var nb, eb bytes.Buffer
	require.NoError(t, loader.WriteNodes(&nb, vs))
	require.NoError(t, loader.WriteEdges(&eb, es))
	assert.Equal(t, "id;x;y;z\n3;1.5;-2;0.001\n7;0;0;0\n", nb.String())
	assert.Equal(t, "source;target\n3;7\n", eb.String())

	gotV, rows, err := loader.LoadNodes(&nb)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, vs, gotV)
	gotE, rows, err := loader.LoadEdges(&eb)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, es, gotE)

	dir := t.TempDir()
	require.NoError(t, loader.WriteNodesFile(filepath.Join(dir, "n.csv"), vs, loader.WithSeparator(',')))
	back, _, err := loader.LoadNodesFile(filepath.Join(dir, "n.csv"), loader.WithSeparator(','))
	require.NoError(t, err)
	assert.Equal(t, vs, back)

	assert.Error(t, loader.WriteEdgesFile(filepath.Join(dir, "missing", "e.csv"), es))
}
