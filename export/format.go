// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrResource indicates that an output file or the Graphviz tool failed.
var ErrResource = errors.New("export: resource error")

// Path separators for report and CSV output.
const (
	ReportArrow = " -> "
	CSVArrow    = "->"
)

// NoPathText is written in place of a path when none exists.
const NoPathText = "No path"

// FormatPath joins ids with sep.
func FormatPath(ids []int, sep string) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// FormatDistance renders a distance with two decimals.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
