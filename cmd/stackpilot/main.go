// Package main is the entry point for the stackpilot CLI.
//
// stackpilot provisions AWS CloudFormation stacks from declarative JSON
// templates and blocks until creation reaches a terminal outcome.
//
// For detailed usage information, run:
//
//	stackpilot --help
package main

import (
	"fmt"
	"os"

	"stackpilot/cmd/stackpilot/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
