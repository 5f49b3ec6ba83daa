// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/nodegraph/analysis"
)

// Report palette.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorSection = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

type reportOptions struct {
	style   bool
	timings bool
}

// ReportOption configures WriteReport.
type ReportOption func(*reportOptions)

// WithStyle enables lipgloss styling. Callers usually pass
// IsTerminal(os.Stdout).
func WithStyle(on bool) ReportOption {
	return func(o *reportOptions) { o.style = on }
}

// WithTimings toggles the timing section and run id. Enabled by default.
func WithTimings(on bool) ReportOption {
	return func(o *reportOptions) { o.timings = on }
}

// styles renders report fragments; the zero value renders plain text.
type styles struct {
	title, section, warn, bad, muted lipgloss.Style
	on                               bool
}

func newStyles(w io.Writer, on bool) styles {
	if !on {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)

	return styles{
		on:      true,
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		section: r.NewStyle().Bold(true).Foreground(colorSection),
		warn:    r.NewStyle().Foreground(colorWarning),
		bad:     r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.on {
		return text
	}

	return st.Render(text)
}

// cycleExplanation describes how cycles are detected.
var cycleExplanation = []string{
	"1. The graph is traversed depth-first from every unvisited vertex.",
	"2. Each vertex is white (unvisited), gray (on the current path) or black (finished).",
	"3. An edge to a gray vertex, other than the edge just arrived by, is a back edge.",
	"4. A back edge closes a cycle; the witness is the tree path plus that edge.",
}

// WriteReport writes the human-readable analysis summary of rep to w.
func WriteReport(w io.Writer, rep *analysis.Report, opts ...ReportOption) error {
	o := reportOptions{timings: true}
	for _, opt := range opts {
		opt(&o)
	}
	s := newStyles(w, o.style)
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) { fmt.Fprintf(bw, format+"\n", args...) }
	section := func(title string) { p("\n%s", s.render(s.section, "== "+title+" ==")) }

	p("%s", s.render(s.title, "=== GRAPH ANALYSIS REPORT ==="))
	if o.timings {
		p("%s", s.render(s.muted, "Run: "+rep.RunID))
	}
	if rep.Stats != nil {
		p("Vertices: %d", rep.Stats.VertexCount)
		p("Edges: %d", rep.Stats.EdgeCount)
	}

	if rep.Degree != nil {
		section("i. Vertex degree")
		for i, d := range rep.Degree.PerVertex {
			p("Vertex %d: %d", idAt(rep.IDs, i), d)
		}
		p("Graph degree: %d", rep.Degree.Max)
	}

	if rep.Components != nil {
		section("ii. Connectivity")
		if rep.Connected {
			p("The graph is connected")
		} else {
			p("The graph is %s (%d components)", s.render(s.warn, "not connected"), rep.Components.Count)
			for c := 0; c < rep.Components.Count; c++ {
				members := rep.Components.Members(c)
				ids := make([]int, len(members))
				for i, v := range members {
					ids[i] = idAt(rep.IDs, v)
				}
				p("  component %d: %s", c+1, FormatPath(ids, " "))
			}
		}
		if d := rep.Diameter; d != nil {
			p("Diameter: %s (%d%s%d)", FormatDistance(d.Distance), d.Pair.Source, ReportArrow, d.Pair.Target)
		}
	}

	section("iii. Cycle detection")
	if rep.HasCycle {
		p("The graph contains a cycle")
		p("Witness: %s", FormatPath(rep.Cycle, ReportArrow))
	} else {
		p("The graph does not contain a cycle")
	}
	p("Independent cycles: %d", rep.Cyclomatic)
	p("How cycles are detected:")
	for _, line := range cycleExplanation {
		p("%s", s.render(s.muted, line))
	}

	if rep.Forest != nil {
		section("iv. Minimum spanning forest")
		p("Trees: %d", rep.Forest.Components)
		p("Edges: %d", rep.Forest.Len())
		p("Weight: %s", FormatDistance(rep.Forest.Weight))
	}

	if q := rep.Query; q != nil {
		section("v. Shortest path")
		p("  * source: %d", q.Pair.Source)
		p("  * target: %d", q.Pair.Target)
		if q.Found() {
			p("Length = %s", FormatDistance(q.Path.Distance))
			p("Path: %s", FormatPath(q.Path.IDs, ReportArrow))
		} else {
			p("%s", s.render(s.bad, "No path found"))
		}
	}

	if len(rep.Paths) > 0 {
		found := 0
		for _, r := range rep.Paths {
			if r.Found() {
				found++
			}
		}
		section("vi. Path table")
		p("Pairs: %d, with path: %d", len(rep.Paths), found)
	}

	if len(rep.Diagnostics) > 0 {
		section("Diagnostics")
		for _, d := range rep.Diagnostics {
			p("- %s", s.render(s.warn, d.String()))
		}
	}

	if o.timings {
		section("vii. Timing")
		for _, t := range rep.Timings {
			p("%-13s %s", t.Phase+":", t.Duration)
		}
		p("Total: %d ms", rep.Total.Milliseconds())
	}

	return bw.Flush()
}

func idAt(ids []int, i int) int {
	if i >= 0 && i < len(ids) {
		return ids[i]
	}

	return i
}

// Summary returns a one-line description of rep, suitable for logs.
func Summary(rep *analysis.Report) string {
	var b strings.Builder
	if rep.Stats != nil {
		fmt.Fprintf(&b, "V=%d E=%d", rep.Stats.VertexCount, rep.Stats.EdgeCount)
	}
	if rep.Components != nil {
		fmt.Fprintf(&b, " components=%d", rep.Components.Count)
	}
	fmt.Fprintf(&b, " cycle=%t", rep.HasCycle)
	if q := rep.Query; q != nil && q.Found() {
		fmt.Fprintf(&b, " path=%s", FormatDistance(q.Path.Distance))
	}

	return strings.TrimSpace(b.String())
}
