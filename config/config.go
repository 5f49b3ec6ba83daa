// SPDX-License-Identifier: MIT
// Package config loads run settings from YAML and validates them.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Command-line flags are applied on top by the caller.
//
//	nodes: data/nodes.csv
//	edges: data/edges.csv
//	paths_csv: out/paths.csv
//	graph_output: out/graph.svg
//	metrics_output: out/nodegraph.prom
//	separator: ";"
//	id_mode: strict
//	query: {source: 1, target: 20}
//	pairs: [[1, 5], [1, 10], {source: 5, target: 10}]
//	log: {level: info, format: text}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nodegraph/analysis"
	"github.com/katalvlaran/nodegraph/core"
)

// ErrInvalidConfig indicates an unreadable or inconsistent configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Nodes         string `yaml:"nodes"`
	Edges         string `yaml:"edges"`
	PathsCSV      string `yaml:"paths_csv"`
	GraphOutput   string `yaml:"graph_output"`
	MetricsOutput string `yaml:"metrics_output"`
	DotBinary     string `yaml:"dot_binary"`
	Separator     string `yaml:"separator"`
	IDMode        string `yaml:"id_mode"`

	// Query is the reported, highlighted path. Nil disables it.
	Query *Pair `yaml:"query"`

	// Pairs is the path table. Absent selects analysis.DefaultPairs; an
	// explicit empty list disables the table.
	Pairs []Pair `yaml:"pairs"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Nodes:       "nodes.csv",
		Edges:       "edges.csv",
		PathsCSV:    "paths.csv",
		GraphOutput: "graph.png",
		DotBinary:   "dot",
		Separator:   ";",
		IDMode:      core.IDModeStrict.String(),
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data over Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate reports every inconsistent field at once.
func (c *Config) Validate() error {
	var problems []string
	if c.Nodes == "" {
		problems = append(problems, "nodes file is required")
	}
	if c.Edges == "" {
		problems = append(problems, "edges file is required")
	}
	if _, err := c.SeparatorRune(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := core.ParseIDMode(c.IDMode); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log format %q (want text or json)", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// SeparatorRune returns the single-rune field separator.
func (c *Config) SeparatorRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Separator)
	if size == 0 || size != len(c.Separator) || r == utf8.RuneError {
		return 0, fmt.Errorf("separator %q must be a single character", c.Separator)
	}
	if r == '\n' || r == '\r' || r == '"' {
		return 0, fmt.Errorf("separator %q is not allowed", c.Separator)
	}

	return r, nil
}

// Mode returns the parsed id mode; invalid values yield IDModeStrict.
func (c *Config) Mode() core.IDMode {
	m, err := core.ParseIDMode(c.IDMode)
	if err != nil {
		return core.IDModeStrict
	}

	return m
}

// Request converts the query and pair settings into an analysis request.
func (c *Config) Request() analysis.Request {
	var req analysis.Request
	if c.Query != nil {
		q := analysis.Pair(*c.Query)
		req.Query = &q
	}
	if c.Pairs != nil {
		req.Pairs = make([]analysis.Pair, len(c.Pairs))
		for i, p := range c.Pairs {
			req.Pairs[i] = analysis.Pair(p)
		}
	}

	return req
}

// NewLogger builds the run logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q (want debug, info, warn or error)", s)
	}

	return level, nil
}
