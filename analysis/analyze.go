// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/degree"
	"github.com/katalvlaran/nodegraph/dfs"
	"github.com/katalvlaran/nodegraph/dijkstra"
	"github.com/katalvlaran/nodegraph/forest"
	"github.com/katalvlaran/nodegraph/matrix"
)

// Phase names, in execution order.
const (
	PhaseDegree       = "degree"
	PhaseConnectivity = "connectivity"
	PhaseCycles       = "cycles"
	PhaseForest       = "forest"
	PhaseDistances    = "distances"
	PhaseQuery        = "query"
	PhasePaths        = "paths"
)

// Path query outcomes used in metrics.
const (
	OutcomeFound   = "found"
	OutcomeNoPath  = "no_path"
	OutcomeInvalid = "invalid"
)

// ErrGraphNil indicates that Analyze was called without a graph.
var ErrGraphNil = errors.New("analysis: graph is nil")

// Analyze runs every analyzer over g and returns the collected report.
// If req.Query is set, its shortest path is marked in g before returning.
//
// Only a nil graph or a cancelled context fail the run; query problems are
// recorded as diagnostics.
func Analyze(ctx context.Context, g *core.Graph, req Request, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSettings(opts)
	a := &analyzer{
		ctx: ctx,
		g:   g,
		s:   s,
		rep: &Report{RunID: uuid.NewString(), IDs: externalIDs(g)},
	}
	a.log = s.logger.With(slog.String("run_id", a.rep.RunID))
	start := time.Now()

	steps := []struct {
		phase string
		run   func() error
	}{
		{PhaseDegree, a.degree},
		{PhaseConnectivity, a.connectivity},
		{PhaseCycles, a.cycles},
		{PhaseForest, a.forest},
		{PhaseDistances, a.distances},
		{PhaseQuery, func() error { return a.query(req.Query) }},
		{PhasePaths, func() error { return a.paths(req.Pairs) }},
	}
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t0 := time.Now()
		if err := st.run(); err != nil {
			return nil, fmt.Errorf("analysis: %s: %w", st.phase, err)
		}
		d := time.Since(t0)
		a.rep.Timings = append(a.rep.Timings, PhaseTiming{Phase: st.phase, Duration: d})
		s.metrics.observePhase(st.phase, d)
		a.log.Debug("phase done", slog.String("phase", st.phase), slog.Duration("took", d))
	}

	a.rep.Stats = g.Stats()
	a.rep.Total = time.Since(start)
	a.log.Info("analysis done",
		slog.Int("components", a.rep.Components.Count),
		slog.Bool("cycle", a.rep.HasCycle),
		slog.Int("diagnostics", len(a.rep.Diagnostics)),
		slog.Duration("took", a.rep.Total))

	return a.rep, nil
}

type analyzer struct {
	ctx context.Context
	g   *core.Graph
	s   settings
	log *slog.Logger
	rep *Report
}

func (a *analyzer) degree() error {
	res, err := degree.Compute(a.g)
	if err != nil {
		return err
	}
	a.rep.Degree = res

	return nil
}

func (a *analyzer) connectivity() error {
	cc, err := bfs.ComponentsContext(a.ctx, a.g)
	if err != nil {
		return err
	}
	a.rep.Components = cc
	a.rep.Connected = cc.Count == 1
	a.s.metrics.setComponents(cc.Count)

	return nil
}

func (a *analyzer) cycles() error {
	has, err := dfs.HasCycleContext(a.ctx, a.g)
	if err != nil {
		return err
	}
	a.rep.HasCycle = has
	if has {
		if a.rep.Cycle, err = dfs.FindCycle(a.g); err != nil {
			return err
		}
	}
	a.rep.Cyclomatic, err = forest.CyclomaticNumber(a.g)

	return err
}

func (a *analyzer) forest() error {
	f, err := forest.Kruskal(a.g)
	if err != nil {
		return err
	}
	a.rep.Forest = f

	return nil
}

func (a *analyzer) distances() error {
	n := a.g.VertexCount()
	if n > a.s.allPairsLimit {
		a.log.Debug("diameter skipped", slog.Int("vertices", n), slog.Int("limit", a.s.allPairsLimit))
		return nil
	}
	apsp, err := matrix.AllPairs(a.g)
	if err != nil {
		return err
	}
	d, u, v := apsp.Diameter()
	a.rep.Diameter = &Diameter{
		Distance: d,
		Pair:     Pair{Source: a.rep.IDs[u], Target: a.rep.IDs[v]},
	}

	return nil
}

// query solves and marks the reported path. Without a query, or when it
// fails, all InPath flags are cleared.
func (a *analyzer) query(q *Pair) error {
	if q == nil {
		a.g.MarkPath(nil)
		return nil
	}
	res := &QueryResult{Pair: *q}
	a.rep.Query = res

	res.Path, res.Err = dijkstra.ShortestPathContext(a.ctx, a.g, q.Source, q.Target)
	if err := a.classify(*q, res.Err); err != nil {
		return err
	}
	if res.Err != nil {
		a.g.MarkPath(nil)
		return nil
	}

	marked := a.g.MarkPath(res.Path.Indices)
	res.Marked = marked
	a.log.Info("query path",
		slog.Int("source", q.Source),
		slog.Int("target", q.Target),
		slog.Float64("distance", res.Path.Distance),
		slog.Int("marked", marked))

	return nil
}

func (a *analyzer) paths(pairs []Pair) error {
	if pairs == nil {
		pairs = DefaultPairs
	}
	rows := make([]PathRow, 0, len(pairs))
	for _, p := range pairs {
		path, err := dijkstra.ShortestPathContext(a.ctx, a.g, p.Source, p.Target)
		if cerr := a.classify(p, err); cerr != nil {
			return cerr
		}
		d, ids := dijkstra.Legacy(path, err)
		rows = append(rows, PathRow{Pair: p, Distance: d, IDs: ids})
	}
	a.rep.Paths = rows

	return nil
}

// classify records a query outcome. Context errors are returned as fatal;
// everything else becomes a diagnostic.
func (a *analyzer) classify(p Pair, err error) error {
	switch {
	case err == nil:
		a.s.metrics.pathQuery(OutcomeFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, dijkstra.ErrNoPath):
		a.s.metrics.pathQuery(OutcomeNoPath)
		a.rep.AddDiagnostics(Diagnostic{
			Kind:    KindNoPath,
			Message: fmt.Sprintf("no path between %d and %d", p.Source, p.Target),
			Err:     err,
		})
	default:
		a.s.metrics.pathQuery(OutcomeInvalid)
		a.log.Warn("invalid query", slog.String("pair", p.String()), slog.Any("err", err))
		a.rep.AddDiagnostics(Diagnostic{
			Kind:    KindQueryInvalid,
			Message: fmt.Sprintf("query %s: %v", p, err),
			Err:     err,
		})
	}

	return nil
}

func externalIDs(g *core.Graph) []int {
	ids := make([]int, g.VertexCount())
	for i := range ids {
		ids[i], _ = g.IDOf(i)
	}

	return ids
}
