// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/nodegraph/core"
)

// Header rows written by WriteNodes and WriteEdges.
var (
	NodesHeader = []string{"id", "x", "y", "z"}
	EdgesHeader = []string{"source", "target"}
)

// WriteNodes writes vertices in the format LoadNodes reads. Coordinates use
// the shortest representation that parses back to the same value.
func WriteNodes(w io.Writer, vs []core.Vertex, opts ...Option) error {
	return write(w, opts, NodesHeader, len(vs), func(i int, rec []string) {
		v := vs[i]
		rec[0] = strconv.Itoa(v.ID)
		rec[1] = strconv.FormatFloat(v.X, 'g', -1, 64)
		rec[2] = strconv.FormatFloat(v.Y, 'g', -1, 64)
		rec[3] = strconv.FormatFloat(v.Z, 'g', -1, 64)
	})
}

// WriteEdges writes edge records in the format LoadEdges reads.
func WriteEdges(w io.Writer, es []EdgeRecord, opts ...Option) error {
	return write(w, opts, EdgesHeader, len(es), func(i int, rec []string) {
		rec[0] = strconv.Itoa(es[i].Source)
		rec[1] = strconv.Itoa(es[i].Target)
	})
}

// WriteNodesFile creates path and calls WriteNodes.
func WriteNodesFile(path string, vs []core.Vertex, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return WriteNodes(w, vs, opts...) })
}

// WriteEdgesFile creates path and calls WriteEdges.
func WriteEdgesFile(path string, es []EdgeRecord, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return WriteEdges(w, es, opts...) })
}

func write(w io.Writer, opts []Option, header []string, n int, fill func(i int, rec []string)) error {
	cw := csv.NewWriter(w)
	cw.Comma = resolve(opts).sep
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for i := 0; i < n; i++ {
		fill(i, rec)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return fmt.Errorf("loader: write %s: %w", path, err)
	}

	return f.Close()
}
