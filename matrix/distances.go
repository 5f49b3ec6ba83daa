// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nodegraph/core"
)

// Distances is the all-pairs shortest path table of a store.
type Distances struct {
	d *Dense
	g *core.Graph
}

// AllPairs computes shortest path distances between every pair of vertices.
// Unreachable pairs hold +Inf.
// Complexity: O(V³) time, O(V²) memory; intended for small and medium stores.
func AllPairs(g *core.Graph) (*Distances, error) {
	m, err := adjacency(g, math.Inf(1))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 0
	}
	floydWarshallInPlace(m)

	return &Distances{d: m, g: g}, nil
}

// At returns the distance between internal indices u and v.
func (d *Distances) At(u, v int) (float64, error) { return d.d.At(u, v) }

// Between returns the distance between external ids; ok is false when no path
// exists.
func (d *Distances) Between(uID, vID int) (dist float64, ok bool, err error) {
	u, found := d.g.IndexOf(uID)
	if !found {
		return 0, false, fmt.Errorf("%w: %d", ErrUnknownVertex, uID)
	}
	v, found := d.g.IndexOf(vID)
	if !found {
		return 0, false, fmt.Errorf("%w: %d", ErrUnknownVertex, vID)
	}
	dist = d.d.data[u*d.d.c+v]

	return dist, !math.IsInf(dist, 1), nil
}

// Eccentricity returns the greatest finite distance from internal index v.
func (d *Distances) Eccentricity(v int) (float64, error) {
	row, err := d.d.Row(v)
	if err != nil {
		return 0, err
	}
	ecc := 0.0
	for _, x := range row {
		if !math.IsInf(x, 1) && x > ecc {
			ecc = x
		}
	}

	return ecc, nil
}

// Diameter returns the greatest finite distance between any two vertices and
// the internal indices realizing it (lowest u, then lowest v, on ties). A store
// without edges has diameter 0 at (0, 0).
func (d *Distances) Diameter() (dist float64, u, v int) {
	n := d.d.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := d.d.data[i*n+j]
			if !math.IsInf(x, 1) && x > dist {
				dist, u, v = x, i, j
			}
		}
	}

	return dist, u, v
}
