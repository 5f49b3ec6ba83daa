// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

// File-local constants: method tags and minimum sizes.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
	minGridSide         = 1
)

// circle places n points evenly on the circle of radius r around (cx, cy).
func circle(ds *Dataset, cfg builderConfig, n int, r, cx, cy float64) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ids[i] = ds.addVertex(cfg, cx+r*math.Cos(a), cy+r*math.Sin(a), 0)
	}

	return ids
}

// Path returns a Constructor for n vertices joined in a line.
func Path(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		prev := 0
		for i := 0; i < n; i++ {
			id := ds.addVertex(cfg, float64(i)*cfg.spacing, 0, 0)
			if i > 0 {
				ds.addEdge(prev, id)
			}
			prev = id
		}

		return nil
	}
}

// Cycle returns a Constructor for the n-cycle.
func Cycle(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		ids := circle(ds, cfg, n, cfg.spacing, 0, 0)
		for i := range ids {
			ds.addEdge(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Star returns a Constructor for a hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		hub := ds.addVertex(cfg, 0, 0, 0)
		for _, leaf := range circle(ds, cfg, n-1, cfg.spacing, 0, 0) {
			ds.addEdge(hub, leaf)
		}

		return nil
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		ids := circle(ds, cfg, n, cfg.spacing, 0, 0)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ds.addEdge(ids[i], ids[j])
			}
		}

		return nil
	}
}

// Grid returns a Constructor for an nx×ny×nz lattice. Vertices are numbered
// x fastest, then y, then z.
func Grid(nx, ny, nz int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if nx < minGridSide || ny < minGridSide || nz < minGridSide {
			return fmt.Errorf("%s: %dx%dx%d: %w", methodGrid, nx, ny, nz, ErrTooFewVertices)
		}
		s := cfg.spacing
		at := func(x, y, z int) int { return (z*ny+y)*nx + x }
		ids := make([]int, nx*ny*nz)
		for z := 0; z < nz; z++ {
			for y := 0; y < ny; y++ {
				for x := 0; x < nx; x++ {
					ids[at(x, y, z)] = ds.addVertex(cfg, float64(x)*s, float64(y)*s, float64(z)*s)
				}
			}
		}
		for z := 0; z < nz; z++ {
			for y := 0; y < ny; y++ {
				for x := 0; x < nx; x++ {
					u := ids[at(x, y, z)]
					if x+1 < nx {
						ds.addEdge(u, ids[at(x+1, y, z)])
					}
					if y+1 < ny {
						ds.addEdge(u, ids[at(x, y+1, z)])
					}
					if z+1 < nz {
						ds.addEdge(u, ids[at(x, y, z+1)])
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that scatters n vertices in a cube and
// joins each unordered pair independently with probability p. Trials run in
// (i asc, j asc) order, so a fixed seed fixes the result.
func RandomSparse(n int, p float64) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		side := cfg.spacing * float64(n)
		ids := make([]int, n)
		for i := range ids {
			ids[i] = ds.addVertex(cfg, cfg.rng.Float64()*side, cfg.rng.Float64()*side, cfg.rng.Float64()*side)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					ds.addEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
