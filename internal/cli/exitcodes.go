package cli

// Exit codes returned by the CLI.
const (
	// ExitOK means no issues were found.
	ExitOK = 0

	// ExitIssues means lint issues were found.
	ExitIssues = 1

	// ExitError means the run itself failed.
	ExitError = 2
)
