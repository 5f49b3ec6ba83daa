// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/nodegraph/core"
)

// DefaultDotBinary is the Graphviz layout command used for image output.
const DefaultDotBinary = "dot"

// Attributes of edges on the marked path.
var pathEdgeAttrs = []encoding.Attribute{
	{Key: "color", Value: "red"},
	{Key: "penwidth", Value: "2"},
}

// dotNode is a store vertex as a gonum node. The DOT node name is the
// internal index, so vertices never merge; the external id is the label.
type dotNode struct {
	index int64
	id    int
}

func (n dotNode) ID() int64 { return n.index }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Itoa(n.id)}}
}

// dotEdge carries weight and path flag through gonum into the DOT writer.
type dotEdge struct {
	from, to dotNode
	weight   float64
	inPath   bool
}

func (e dotEdge) From() graph.Node { return e.from }

func (e dotEdge) To() graph.Node { return e.to }

func (e dotEdge) Weight() float64 { return e.weight }

func (e dotEdge) ReversedEdge() graph.Edge {
	e.from, e.to = e.to, e.from
	return e
}

func (e dotEdge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: FormatDistance(e.weight)}}
	if e.inPath {
		attrs = append(attrs, pathEdgeAttrs...)
	}

	return attrs
}

// toGonum mirrors g as a gonum weighted undirected graph.
func toGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	nodes := make([]dotNode, g.VertexCount())
	for i := range nodes {
		id, _ := g.IDOf(i)
		nodes[i] = dotNode{index: int64(i), id: id}
		out.AddNode(nodes[i])
	}
	for _, e := range g.Edges() {
		out.SetWeightedEdge(dotEdge{
			from:   nodes[e.From],
			to:     nodes[e.To],
			weight: e.Weight,
			inPath: e.InPath,
		})
	}

	return out
}

// WriteDOT writes g as an undirected Graphviz graph named G. Vertices are
// labelled with their external id, edges with their weight; edges flagged
// InPath are drawn red with penwidth 2.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrResource)
	}
	b, err := dot.Marshal(toGonum(g), "G", "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}

type dotOptions struct {
	binary string
}

// DOTOption configures WriteDOTFile.
type DOTOption func(*dotOptions)

// WithDotBinary overrides the Graphviz command used for image formats.
func WithDotBinary(name string) DOTOption {
	return func(o *dotOptions) {
		if name != "" {
			o.binary = name
		}
	}
}

// imageFormats maps output extensions to Graphviz -T formats.
var imageFormats = map[string]string{
	".png": "png",
	".svg": "svg",
}

// WriteDOTFile writes the diagram to path. For .png and .svg the DOT text is
// piped through Graphviz; any other extension receives the DOT text itself.
// All failures wrap ErrResource.
func WriteDOTFile(ctx context.Context, path string, g *core.Graph, opts ...DOTOption) error {
	o := dotOptions{binary: DefaultDotBinary}
	for _, opt := range opts {
		opt(&o)
	}

	var buf bytes.Buffer
	if err := WriteDOT(&buf, g); err != nil {
		return err
	}

	format, image := imageFormats[strings.ToLower(filepath.Ext(path))]
	if !image {
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrResource, err)
		}
		return nil
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, o.binary, "-T"+format, "-o", path)
	cmd.Stdin = &buf
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%w: %s: %v", ErrResource, o.binary, err)
		}
		return fmt.Errorf("%w: %s: %v: %s", ErrResource, o.binary, err, msg)
	}

	return nil
}
