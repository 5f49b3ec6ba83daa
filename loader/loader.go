// SPDX-License-Identifier: MIT
// Package loader reads node and edge records from separator-delimited text
// files with a header line.
//
// Node rows are `id;x;y;z`. Missing or empty coordinates default to 0.
// Edge rows are `source;target` (external ids). Extra fields are ignored.
//
// Malformed rows (non-numeric id, bad coordinate, missing target) are skipped
// and returned as RowError values so the caller can report them; only I/O
// failures are fatal.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/nodegraph/core"
)

// DefaultSeparator is the field separator of the record files.
const DefaultSeparator = ';'

var (
	// ErrOpen indicates that a record file could not be opened.
	ErrOpen = errors.New("loader: cannot open file")

	// ErrMalformedRow indicates a row that could not be parsed.
	ErrMalformedRow = errors.New("loader: malformed row")
)

// RowError describes one skipped row.
type RowError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Err is the cause, wrapping ErrMalformedRow or a *csv.ParseError.
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e RowError) Unwrap() error { return e.Err }

// EdgeRecord is one edge row: two external vertex ids.
type EdgeRecord struct {
	Source int
	Target int
}

type options struct {
	sep rune
}

// Option configures the record readers.
type Option func(*options)

// WithSeparator sets the field separator. Zero, newline and quote runes are
// ignored and the default is kept.
func WithSeparator(r rune) Option {
	return func(o *options) {
		if r != 0 && r != '\n' && r != '\r' && r != '"' {
			o.sep = r
		}
	}
}

func resolve(opts []Option) options {
	o := options{sep: DefaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LoadNodes parses node records from r, skipping the header line.
func LoadNodes(r io.Reader, opts ...Option) ([]core.Vertex, []RowError, error) {
	var nodes []core.Vertex
	rowErrs, err := scan(r, opts, func(fields []string) error {
		id, err := parseInt(fields[0], "id")
		if err != nil {
			return err
		}
		v := core.Vertex{ID: id}
		coords := []*float64{&v.X, &v.Y, &v.Z}
		for i, dst := range coords {
			if i+1 >= len(fields) {
				break
			}
			if *dst, err = parseCoord(fields[i+1], "xyz"[i:i+1]); err != nil {
				return err
			}
		}
		nodes = append(nodes, v)

		return nil
	})

	return nodes, rowErrs, err
}

// LoadEdges parses edge records from r, skipping the header line.
func LoadEdges(r io.Reader, opts ...Option) ([]EdgeRecord, []RowError, error) {
	var edges []EdgeRecord
	rowErrs, err := scan(r, opts, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%w: expected source and target, got %d field(s)", ErrMalformedRow, len(fields))
		}
		src, err := parseInt(fields[0], "source")
		if err != nil {
			return err
		}
		dst, err := parseInt(fields[1], "target")
		if err != nil {
			return err
		}
		edges = append(edges, EdgeRecord{Source: src, Target: dst})

		return nil
	})

	return edges, rowErrs, err
}

// LoadNodesFile opens path and calls LoadNodes.
func LoadNodesFile(path string, opts ...Option) ([]core.Vertex, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return LoadNodes(f, opts...)
}

// LoadEdgesFile opens path and calls LoadEdges.
func LoadEdgesFile(path string, opts ...Option) ([]EdgeRecord, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return LoadEdges(f, opts...)
}

// scan feeds every data row of r to row. Row-level failures are collected;
// a non-parse read error aborts.
func scan(r io.Reader, opts []Option, row func(fields []string) error) ([]RowError, error) {
	o := resolve(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var rowErrs []RowError
	header := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rowErrs, nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rowErrs = append(rowErrs, RowError{Line: perr.Line, Err: err})
			header = false
			continue
		}
		if err != nil {
			return rowErrs, fmt.Errorf("loader: read: %w", err)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		if err := row(fields); err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
		}
	}
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRow, field, s)
	}

	return n, nil
}

func parseCoord(s, axis string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a finite number", ErrMalformedRow, axis, s)
	}

	return f, nil
}
