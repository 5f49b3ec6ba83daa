// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

// initDistancesInPlace converts adjacency (0 / w) to a distance matrix in-place:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> unchanged.
//
// Complexity: O(n²).
func initDistancesInPlace(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("initDistancesInPlace: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				m.data[i*n+j] = 0 // distance to self
			case m.data[i*n+j] == 0:
				m.data[i*n+j] = math.Inf(1) // no direct edge
			}
		}
	}

	return nil
}

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n³); extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		baseK, baseI int     // row offsets for k and i in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j] and the candidate via k
	)
	for k := 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i := 0; i < n; i++ { // source
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j := 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall converts the adjacency matrix m into all-pairs shortest path
// distances in-place. Off-diagonal zeros are read as "no edge" and become +Inf.
func FloydWarshall(m *Dense) error {
	if err := initDistancesInPlace(m); err != nil {
		return fmt.Errorf("FloydWarshall: %w", err)
	}
	floydWarshallInPlace(m)

	return nil
}
