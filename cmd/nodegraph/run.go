// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodegraph/analysis"
	"github.com/katalvlaran/nodegraph/config"
	"github.com/katalvlaran/nodegraph/export"
	"github.com/katalvlaran/nodegraph/loader"
)

// run executes one analysis with the resolved configuration.
func run(cmd *cobra.Command, cfg *config.Config, f *flags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := cfg.Log.NewLogger(cmd.ErrOrStderr())
	metrics := analysis.NewMetrics()
	sep, _ := cfg.SeparatorRune()

	vertices, nodeRows, err := loader.LoadNodesFile(cfg.Nodes, loader.WithSeparator(sep))
	if err != nil {
		return err
	}
	metrics.RowSkipped("nodes", len(nodeRows))
	diags := analysis.RowDiagnostics(cfg.Nodes, nodeRows)

	// A missing edge file leaves an edgeless graph, which is still analyzable.
	edges, edgeRows, err := loader.LoadEdgesFile(cfg.Edges, loader.WithSeparator(sep))
	if err != nil {
		log.Error("edges not loaded", slog.String("file", cfg.Edges), slog.Any("err", err))
		diags = append(diags, analysis.Diagnostic{Kind: analysis.KindResource, Message: err.Error(), Err: err})
	}
	metrics.RowSkipped("edges", len(edgeRows))
	diags = append(diags, analysis.RowDiagnostics(cfg.Edges, edgeRows)...)
	log.Info("records loaded",
		slog.Int("nodes", len(vertices)),
		slog.Int("edges", len(edges)),
		slog.Int("bad_rows", len(nodeRows)+len(edgeRows)))

	opts := []analysis.Option{
		analysis.WithLogger(log),
		analysis.WithMetrics(metrics),
		analysis.WithIDMode(cfg.Mode()),
	}
	g, buildDiags, err := analysis.Build(vertices, edges, opts...)
	if err != nil {
		return fmt.Errorf("no vertex loaded from %s: %w", cfg.Nodes, err)
	}
	diags = append(diags, buildDiags...)

	req := cfg.Request()
	if req.Query == nil && f.prompt {
		q, err := promptQuery(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		req.Query = q
	}

	rep, err := analysis.Analyze(ctx, g, req, opts...)
	if err != nil {
		return err
	}
	rep.Diagnostics = append(diags, rep.Diagnostics...)

	writeOutput(log, rep, "diagram", cfg.GraphOutput, func(path string) error {
		return export.WriteDOTFile(ctx, path, g, export.WithDotBinary(cfg.DotBinary))
	})
	writeOutput(log, rep, "path table", cfg.PathsCSV, func(path string) error {
		return export.WritePathsCSVFile(path, rep.Paths)
	})

	style := false
	if file, ok := out.(*os.File); ok && !f.noStyle {
		style = export.IsTerminal(file)
	}
	if err := export.WriteReport(out, rep, export.WithStyle(style)); err != nil {
		return err
	}

	// Metrics go last so they include every phase.
	writeOutput(log, nil, "metrics", cfg.MetricsOutput, metrics.WriteTextfile)
	log.Info("run complete", slog.String("run_id", rep.RunID), slog.String("summary", export.Summary(rep)))

	return nil
}

// writeOutput runs write for a configured output path. Failures are logged
// and, when rep is given, recorded as diagnostics; they never abort the run.
func writeOutput(log *slog.Logger, rep *analysis.Report, what, path string, write func(string) error) {
	if path == "" {
		return
	}
	if err := write(path); err != nil {
		log.Error("output failed", slog.String("output", what), slog.String("path", path), slog.Any("err", err))
		if rep != nil {
			rep.AddDiagnostics(analysis.Diagnostic{
				Kind:    analysis.KindResource,
				Message: fmt.Sprintf("%s %s: %v", what, path, err),
				Err:     err,
			})
		}
		return
	}
	log.Info("output written", slog.String("output", what), slog.String("path", path))
}

var errPrompt = errors.New("prompt: expected two node ids")

// promptQuery asks for the query source and target ids.
func promptQuery(in io.Reader, out io.Writer) (*analysis.Pair, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	ask := func(label string) (int, error) {
		fmt.Fprintf(out, "%s node id: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, errPrompt
		}
		id, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errPrompt, sc.Text())
		}
		return id, nil
	}

	fmt.Fprintln(out, "Select two nodes for the shortest path")
	src, err := ask("Source")
	if err != nil {
		return nil, err
	}
	dst, err := ask("Target")
	if err != nil {
		return nil, err
	}

	return &analysis.Pair{Source: src, Target: dst}, nil
}
