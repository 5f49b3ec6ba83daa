// SPDX-License-Identifier: MIT

package analysis

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/nodegraph/core"
)

// DefaultAllPairsLimit is the largest store for which Analyze computes
// all-pairs distances.
const DefaultAllPairsLimit = 500

type settings struct {
	logger        *slog.Logger
	metrics       *Metrics
	idMode        core.IDMode
	allPairsLimit int
}

// Option configures Build and Analyze.
type Option func(*settings)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records counters, gauges and phase durations into m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithIDMode selects external id resolution for Build.
func WithIDMode(mode core.IDMode) Option {
	return func(s *settings) { s.idMode = mode }
}

// WithAllPairsLimit sets the vertex count above which the diameter phase is
// skipped. Zero or less disables it.
func WithAllPairsLimit(n int) Option {
	return func(s *settings) { s.allPairsLimit = n }
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		idMode:        core.IDModeStrict,
		allPairsLimit: DefaultAllPairsLimit,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
