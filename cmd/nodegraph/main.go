// SPDX-License-Identifier: MIT
// Command nodegraph loads a 3D node/edge record set, analyzes the resulting
// weighted graph and writes a report, a Graphviz diagram with the query path
// highlighted, a path table CSV and optionally a metrics textfile.
//
// Usage:
//
//	nodegraph [nodes.csv] [edges.csv] [paths.csv] [graph.dot|graph.png|graph.svg] [flags]
//
// Exit status is 1 when the configuration is invalid or no vertex could be
// loaded. Failures writing individual outputs are reported but not fatal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and maps its outcome to an exit status.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, "nodegraph:", err)
		return 1
	}

	return 0
}
