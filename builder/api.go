// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/loader"
)

// Dataset is a generated record set, ready for analysis.Build or the loader
// writers.
type Dataset struct {
	Vertices []core.Vertex
	Edges    []loader.EdgeRecord
}

// Constructor appends one shape to ds. Constructors validate parameters
// before touching ds and never panic.
type Constructor func(ds *Dataset, cfg builderConfig) error

// Build applies cons in order to an empty dataset.
func Build(opts []BuilderOption, cons ...Constructor) (*Dataset, error) {
	cfg := newBuilderConfig(opts...)
	ds := &Dataset{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(ds, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return ds, nil
}

// addVertex appends a vertex with the next id at (x,y,z) plus jitter and
// returns its id.
func (ds *Dataset) addVertex(cfg builderConfig, x, y, z float64) int {
	id := cfg.firstID + len(ds.Vertices)
	if cfg.jitter > 0 {
		x += (2*cfg.rng.Float64() - 1) * cfg.jitter
		y += (2*cfg.rng.Float64() - 1) * cfg.jitter
		z += (2*cfg.rng.Float64() - 1) * cfg.jitter
	}
	ds.Vertices = append(ds.Vertices, core.Vertex{ID: id, X: x, Y: y, Z: z})

	return id
}

func (ds *Dataset) addEdge(u, v int) {
	ds.Edges = append(ds.Edges, loader.EdgeRecord{Source: u, Target: v})
}
