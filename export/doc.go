// SPDX-License-Identifier: MIT
// Package export renders analysis results for humans and tools:
//
//   - WriteReport    text summary of a Report, optionally styled for a TTY.
//   - WriteDOT       Graphviz description of the store; edges on the marked
//     path are drawn red and thicker.
//   - WriteDOTFile   .dot text, or .png/.svg through the Graphviz `dot` binary.
//   - WritePathsCSV  the path table, `;`-separated with a header row.
//
// File and subprocess failures wrap ErrResource. They are meant to be
// reported and skipped: one failed output never blocks the others.
package export
