// SPDX-License-Identifier: MIT
// Package builder generates deterministic node/edge record sets: sample
// inputs for the command line and fixtures for tests.
//
// A Dataset is assembled by Build from one or more Constructors applied in
// order. Each constructor appends its own vertices with fresh consecutive
// ids, so composing Path(5) and Cycle(4) yields ids 1..9 in two components.
//
// Layout (before jitter), with s = spacing:
//
//	Path(n)           (i·s, 0, 0)
//	Cycle(n), Star(n) on the circle of radius s in the z=0 plane; Star's hub at its centre
//	Complete(n)       as Cycle
//	Grid(nx,ny,nz)    lattice (x·s, y·s, z·s); edges join axis neighbors
//	RandomSparse(n,p) uniform in the cube [0, s·n)³; each pair joined with prob. p
//
// Determinism: same constructors, order and seed produce identical datasets.
package builder
