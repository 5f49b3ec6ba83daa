// SPDX-License-Identifier: MIT
// Package forest defines the spanning-forest result and sentinel errors.
package forest

import (
	"errors"

	"github.com/katalvlaran/nodegraph/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed.
var ErrGraphNil = errors.New("forest: graph is nil")

// ErrRootNotFound indicates that the Prim root index is out of range.
var ErrRootNotFound = errors.New("forest: root vertex not found")

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component.
type Forest struct {
	// Edges in the order they were accepted.
	Edges []*core.Edge

	// Weight is the sum of Edges' weights.
	Weight float64

	// Components is the number of trees (connected components covered).
	Components int
}

// Len returns the number of forest edges; for a full forest this is V - Components.
func (f *Forest) Len() int { return len(f.Edges) }
