// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"time"

	"github.com/katalvlaran/nodegraph/bfs"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/degree"
	"github.com/katalvlaran/nodegraph/dijkstra"
	"github.com/katalvlaran/nodegraph/forest"
)

// Pair is a (source, target) external-id query.
type Pair struct {
	Source int
	Target int
}

func (p Pair) String() string { return fmt.Sprintf("%d->%d", p.Source, p.Target) }

// DefaultPairs is the path table computed when no pairs are configured.
var DefaultPairs = []Pair{
	{1, 5}, {1, 10}, {1, 15}, {1, 20},
	{5, 10}, {5, 15}, {5, 20},
	{10, 15}, {10, 20},
	{15, 20},
}

// Request selects what Analyze computes beyond the fixed analyzers.
type Request struct {
	// Query, if non-nil, is solved, reported and marked in the store.
	Query *Pair

	// Pairs are solved for the path table. Nil selects DefaultPairs;
	// an empty non-nil slice disables the table.
	Pairs []Pair
}

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind string

const (
	KindRowSkipped   DiagnosticKind = "row_skipped"
	KindEdgeSkipped  DiagnosticKind = "edge_skipped"
	KindQueryInvalid DiagnosticKind = "query_invalid"
	KindNoPath       DiagnosticKind = "no_path"
	KindResource     DiagnosticKind = "resource"
)

// Diagnostic is a non-fatal problem surfaced to the user.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Err     error
}

func (d Diagnostic) String() string { return fmt.Sprintf("%s: %s", d.Kind, d.Message) }

// QueryResult is the outcome of the single reported query.
type QueryResult struct {
	Pair   Pair
	Path   dijkstra.Path
	Err    error
	Marked int
}

// Found reports whether a path was found.
func (q *QueryResult) Found() bool { return q.Err == nil }

// PathRow is one path-table row in sentinel form: Distance is
// dijkstra.NoPathDistance and IDs is empty when there is no path.
type PathRow struct {
	Pair
	Distance float64
	IDs      []int
}

// Found reports whether the row holds a path.
func (r PathRow) Found() bool { return r.Distance >= 0 }

// Diameter is the greatest finite shortest-path distance in the store.
type Diameter struct {
	Distance float64
	Pair     Pair
}

// PhaseTiming is the wall time of one analysis phase.
type PhaseTiming struct {
	Phase    string
	Duration time.Duration
}

// Report is the complete outcome of one run.
type Report struct {
	// RunID identifies this run in logs and metrics output.
	RunID string

	// Stats is a snapshot of the store after path marking.
	Stats *core.GraphStats

	// IDs maps internal index to external id, for rendering.
	IDs []int

	Degree *degree.Result

	Components *bfs.ComponentsResult
	Connected  bool

	HasCycle bool
	// Cycle is one witness cycle as closed external ids, nil if acyclic.
	Cycle []int
	// Cyclomatic is E - V + C.
	Cyclomatic int

	Forest *forest.Forest

	// Diameter is nil when the store exceeds the all-pairs limit.
	Diameter *Diameter

	Query *QueryResult
	Paths []PathRow

	Diagnostics []Diagnostic
	Timings     []PhaseTiming
	Total       time.Duration
}

// AddDiagnostics appends ds to the report.
func (r *Report) AddDiagnostics(ds ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, ds...)
}
