// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// ShapeParams carries the size parameters a named shape may use.
type ShapeParams struct {
	N          int
	NX, NY, NZ int
	P          float64
}

var shapes = map[string]func(ShapeParams) Constructor{
	"path":     func(p ShapeParams) Constructor { return Path(p.N) },
	"cycle":    func(p ShapeParams) Constructor { return Cycle(p.N) },
	"star":     func(p ShapeParams) Constructor { return Star(p.N) },
	"complete": func(p ShapeParams) Constructor { return Complete(p.N) },
	"grid":     func(p ShapeParams) Constructor { return Grid(p.NX, p.NY, p.NZ) },
	"random":   func(p ShapeParams) Constructor { return RandomSparse(p.N, p.P) },
}

// Shapes lists the names accepted by Parse.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Parse returns the constructor for a shape name.
func Parse(name string, p ShapeParams) (Constructor, error) {
	mk, ok := shapes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Shapes(), ", "))
	}

	return mk(p), nil
}
