// SPDX-License-Identifier: MIT

package degree

import (
	"errors"

	"github.com/katalvlaran/nodegraph/core"
)

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("degree: graph is nil")

// Result holds the degree of every vertex and the graph maximum.
type Result struct {
	// PerVertex[i] is the degree of the vertex at internal index i.
	PerVertex []int

	// Max is the largest entry of PerVertex (0 for an edgeless graph).
	Max int
}

// Compute returns the degree of every vertex of g.
// Complexity: O(V).
func Compute(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	res := &Result{PerVertex: make([]int, n)}
	for v := 0; v < n; v++ {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		res.PerVertex[v] = d
		if d > res.Max {
			res.Max = d
		}
	}

	return res, nil
}

// ByID re-keys PerVertex by external vertex id.
func (r *Result) ByID(g *core.Graph) map[int]int {
	out := make(map[int]int, len(r.PerVertex))
	for i, d := range r.PerVertex {
		id, err := g.IDOf(i)
		if err != nil {
			continue
		}
		out[id] = d
	}

	return out
}

// MaxVertices returns the internal indices whose degree equals Max, ascending.
func (r *Result) MaxVertices() []int {
	var out []int
	for i, d := range r.PerVertex {
		if d == r.Max {
			out = append(out, i)
		}
	}

	return out
}

// Sum returns the sum of all degrees.
func (r *Result) Sum() int {
	s := 0
	for _, d := range r.PerVertex {
		s += d
	}

	return s
}
