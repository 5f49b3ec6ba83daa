// SPDX-License-Identifier: MIT

package analysis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nodegraph/analysis"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/loader"
)

func ExampleAnalyze() {
	vs := []core.Vertex{{ID: 1}, {ID: 2, X: 3}, {ID: 3, X: 3, Y: 4}}
	es := []loader.EdgeRecord{{Source: 1, Target: 2}, {Source: 2, Target: 3}, {Source: 3, Target: 3}}

	g, diags, err := analysis.Build(vs, es)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(diags), diags[0].Message)

	rep, err := analysis.Analyze(context.Background(), g, analysis.Request{
		Query: &analysis.Pair{Source: 1, Target: 3},
		Pairs: []analysis.Pair{},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Connected, rep.HasCycle, rep.Degree.Max)
	fmt.Printf("%.2f %v marked=%d\n", rep.Query.Path.Distance, rep.Query.Path.IDs, rep.Query.Marked)

	// Output:
	// 1 edge 3;3 skipped (self_loop)
	// true false 2
	// 7.00 [1 2 3] marked=2
}
