// SPDX-License-Identifier: MIT
// Package nodegraph analyzes undirected graphs of points in 3D space: node
// records carry an id and coordinates, edge records join two ids, and every
// edge is weighted by the Euclidean distance between its endpoints.
//
// The module is organized as one package per concern:
//
//	core/      - graph store: vertices, weighted edges, id resolution, path flags
//	degree/    - per-vertex degree and maximum degree
//	bfs/       - breadth-first traversal, connected components, IsConnected
//	dfs/       - depth-first traversal with back-edge hooks, cycle detection
//	dijkstra/  - single-source shortest paths, ShortestPath, path marking
//	forest/    - minimum spanning forest (Kruskal, Prim), cyclomatic number
//	matrix/    - dense all-pairs distances (Floyd–Warshall), diameter
//	loader/    - `;`-separated node/edge record files, read and write
//	builder/   - deterministic sample record sets (path, grid, random, ...)
//	analysis/  - run orchestration: build, analyze, diagnostics, metrics
//	export/    - text report, Graphviz DOT/PNG/SVG, path table CSV
//	config/    - YAML configuration
//	cmd/nodegraph - command-line entry point
//
// Quick start:
//
//	g, diags, err := analysis.Build(vertices, edges)
//	rep, err := analysis.Analyze(ctx, g, analysis.Request{Query: &analysis.Pair{Source: 1, Target: 20}})
//	export.WriteReport(os.Stdout, rep)
//	export.WriteDOTFile(ctx, "graph.svg", g)
//	export.WritePathsCSVFile("paths.csv", rep.Paths)
//
// All analyzers are deterministic: neighbors are visited in ascending index
// order and ties in Dijkstra's queue break by vertex index.
package nodegraph
