// SPDX-License-Identifier: MIT
// Package analysis orchestrates one run: it builds the graph store from
// loaded records, runs every analyzer over it, marks the query path and
// collects results, diagnostics, phase timings and metrics into a Report.
//
// Propagation policy:
//
//   - core.ErrEmptyInput from Build is fatal and returned as an error.
//   - Per-edge and per-query failures (unknown ids, self-loops, duplicate
//     edges, unreachable targets) are recorded as Diagnostic entries and the
//     run continues.
//
// Phases, in order: degree, connectivity, cycles, forest, distances, query,
// paths. The distances phase is O(V³) and skipped above WithAllPairsLimit.
// The query path is marked in the store before Analyze returns, so export
// may run directly afterwards.
package analysis
