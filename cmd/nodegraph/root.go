// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodegraph/config"
)

// flags holds command-line values; they override the config file when set.
type flags struct {
	configPath string

	nodes, edges, paths, graph, metrics string
	dotBinary                           string
	separator, idMode                   string
	source, target                      int
	logLevel, logFormat                 string

	noStyle bool
	prompt  bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "nodegraph [nodes.csv] [edges.csv] [paths.csv] [graph.dot|graph.png]",
		Short: "Analyze a weighted 3D node graph",
		Long: `Load nodes (id;x;y;z) and edges (source;target), build an undirected graph
weighted by Euclidean distance and report degrees, connectivity, cycles, the
minimum spanning forest and shortest paths.

Outputs:
  report     stdout
  diagram    Graphviz DOT, or PNG/SVG through the dot binary
  path table CSV with SourceNodeID;TargetNodeID;PathLength;Path
  metrics    Prometheus textfile (optional)

Examples:
  nodegraph nodes.csv edges.csv paths.csv graph.dot --source 1 --target 20
  nodegraph --config nodegraph.yaml --graph out/graph.svg
  nodegraph --prompt`,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, cfg, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVar(&f.nodes, "nodes", "", "node records file")
	fl.StringVar(&f.edges, "edges", "", "edge records file")
	fl.StringVar(&f.paths, "paths", "", "path table CSV output (empty disables)")
	fl.StringVar(&f.graph, "graph", "", "diagram output: .dot, .png or .svg (empty disables)")
	fl.StringVar(&f.metrics, "metrics", "", "Prometheus textfile output")
	fl.StringVar(&f.dotBinary, "dot-binary", "", "Graphviz command for image output")
	fl.StringVar(&f.separator, "separator", "", "input field separator")
	fl.StringVar(&f.idMode, "id-mode", "", "external id resolution: strict or positional")
	fl.IntVarP(&f.source, "source", "s", 0, "query source node id")
	fl.IntVarP(&f.target, "target", "t", 0, "query target node id")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "", "text or json")
	fl.BoolVar(&f.noStyle, "no-style", false, "disable styled terminal output")
	fl.BoolVar(&f.prompt, "prompt", false, "ask for the query nodes on stdin when not configured")

	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// resolve builds the effective configuration: defaults, then the config
// file, then positional arguments, then explicitly set flags.
func (f *flags) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	positional := []*string{&cfg.Nodes, &cfg.Edges, &cfg.PathsCSV, &cfg.GraphOutput}
	for i, a := range args {
		*positional[i] = a
	}

	set := cmd.Flags().Changed
	overrides := []struct {
		name string
		dst  *string
		val  string
	}{
		{"nodes", &cfg.Nodes, f.nodes},
		{"edges", &cfg.Edges, f.edges},
		{"paths", &cfg.PathsCSV, f.paths},
		{"graph", &cfg.GraphOutput, f.graph},
		{"metrics", &cfg.MetricsOutput, f.metrics},
		{"dot-binary", &cfg.DotBinary, f.dotBinary},
		{"separator", &cfg.Separator, f.separator},
		{"id-mode", &cfg.IDMode, f.idMode},
		{"log-level", &cfg.Log.Level, f.logLevel},
		{"log-format", &cfg.Log.Format, f.logFormat},
	}
	for _, o := range overrides {
		if set(o.name) {
			*o.dst = o.val
		}
	}

	switch {
	case set("source") && set("target"):
		cfg.Query = &config.Pair{Source: f.source, Target: f.target}
	case set("source") || set("target"):
		return nil, fmt.Errorf("%w: --source and --target must be given together", config.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
