package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/semi-framework/cli/internal/cli"
	"github.com/semi-framework/cli/internal/cmdtree"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmdtree.ExitCode(err))
	}
}
