// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/loader"
)

// Skip reasons used in diagnostics, logs and the edges_skipped metric.
const (
	ReasonUnknownVertex = "unknown_vertex"
	ReasonSelfLoop      = "self_loop"
	ReasonDuplicate     = "duplicate"
)

// Build creates the graph store from loaded records. Edge records that cannot
// be inserted are skipped and returned as diagnostics; only an empty or
// otherwise invalid vertex set fails the build.
func Build(vertices []core.Vertex, edges []loader.EdgeRecord, opts ...Option) (*core.Graph, []Diagnostic, error) {
	s := newSettings(opts)

	g, err := core.NewGraph(vertices, core.WithIDMode(s.idMode))
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: build: %w", err)
	}

	var diags []Diagnostic
	for i, rec := range edges {
		if _, err := g.AddEdge(rec.Source, rec.Target); err != nil {
			reason := skipReason(err)
			s.metrics.edgeSkipped(reason)
			s.logger.Debug("edge skipped",
				slog.Int("record", i+1),
				slog.Int("source", rec.Source),
				slog.Int("target", rec.Target),
				slog.String("reason", reason))
			diags = append(diags, Diagnostic{
				Kind:    KindEdgeSkipped,
				Message: fmt.Sprintf("edge %d;%d skipped (%s)", rec.Source, rec.Target, reason),
				Err:     err,
			})
		}
	}
	s.metrics.setShape(g.VertexCount(), g.EdgeCount())
	s.logger.Info("graph built",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("skipped", len(diags)),
		slog.String("id_mode", s.idMode.String()))

	return g, diags, nil
}

// RowDiagnostics converts loader row errors for file into diagnostics.
func RowDiagnostics(file string, rows []loader.RowError) []Diagnostic {
	out := make([]Diagnostic, 0, len(rows))
	for _, r := range rows {
		out = append(out, Diagnostic{
			Kind:    KindRowSkipped,
			Message: fmt.Sprintf("%s: %v", file, r),
			Err:     r,
		})
	}

	return out
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, core.ErrLoopNotAllowed):
		return ReasonSelfLoop
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		return ReasonDuplicate
	default:
		return ReasonUnknownVertex
	}
}
