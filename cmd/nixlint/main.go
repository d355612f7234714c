// Command nixlint is the command-line entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/nixlint/internal/cli"
)

// Build-time variables, set via -ldflags.
//
//nolint:gochecknoglobals // set by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrLintIssuesFound) {
			os.Exit(cli.ExitIssues)
		}
		fmt.Fprintln(os.Stderr, "nixlint:", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.ExitOK)
}
