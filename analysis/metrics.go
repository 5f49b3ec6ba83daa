// SPDX-License-Identifier: MIT

package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the run counters on a private registry, so that multiple
// runs in one process (tests, embedding) never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	// EdgesSkipped counts edge records rejected while building the store.
	// Labels: reason (unknown_vertex, self_loop, duplicate).
	EdgesSkipped *prometheus.CounterVec

	// RowsSkipped counts malformed input rows.
	// Labels: file (nodes, edges).
	RowsSkipped *prometheus.CounterVec

	// PathQueries counts shortest path queries.
	// Labels: outcome (found, no_path, invalid).
	PathQueries *prometheus.CounterVec

	// PhaseDuration tracks wall time per analysis phase.
	// Labels: phase.
	PhaseDuration *prometheus.HistogramVec

	Vertices   prometheus.Gauge
	Edges      prometheus.Gauge
	Components prometheus.Gauge
}

// NewMetrics creates and registers the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EdgesSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodegraph",
			Subsystem: "build",
			Name:      "edges_skipped_total",
			Help:      "Edge records skipped while building the graph",
		}, []string{"reason"}),
		RowsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodegraph",
			Subsystem: "load",
			Name:      "rows_skipped_total",
			Help:      "Malformed input rows skipped while loading",
		}, []string{"file"}),
		PathQueries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nodegraph",
			Subsystem: "path",
			Name:      "queries_total",
			Help:      "Shortest path queries by outcome",
		}, []string{"outcome"}),
		PhaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nodegraph",
			Subsystem: "analysis",
			Name:      "phase_duration_seconds",
			Help:      "Wall time of each analysis phase",
			Buckets:   []float64{.00001, .0001, .001, .01, .1, 1, 10},
		}, []string{"phase"}),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "nodegraph",
			Name:      "vertices",
			Help:      "Vertices in the graph store",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "nodegraph",
			Name:      "edges",
			Help:      "Edges in the graph store",
		}),
		Components: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "nodegraph",
			Name:      "components",
			Help:      "Connected components of the graph",
		}),
	}
}

// Registry exposes the private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// The helpers below accept a nil receiver so callers need not branch.

func (m *Metrics) observePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (m *Metrics) edgeSkipped(reason string) {
	if m == nil {
		return
	}
	m.EdgesSkipped.WithLabelValues(reason).Inc()
}

// RowSkipped counts n malformed rows of file.
func (m *Metrics) RowSkipped(file string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RowsSkipped.WithLabelValues(file).Add(float64(n))
}

func (m *Metrics) pathQuery(outcome string) {
	if m == nil {
		return
	}
	m.PathQueries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) setShape(vertices, edges int) {
	if m == nil {
		return
	}
	m.Vertices.Set(float64(vertices))
	m.Edges.Set(float64(edges))
}

func (m *Metrics) setComponents(n int) {
	if m == nil {
		return
	}
	m.Components.Set(float64(n))
}
