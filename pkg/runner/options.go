// Package runner provides multi-file linting orchestration: discovery, a
// worker pool, and aggregate results. Per-tree evaluation stays sequential;
// parallelism is across files only, and results are re-assembled in
// discovery order so output is deterministic.
package runner

import "github.com/yaklabco/nixlint/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current directory.
	Paths []string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered Nix source. Defaults to [".nix"].
	Extensions []string

	// ExcludeGlobs are patterns used to skip files, matched against the
	// slash-separated relative path.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers.
	// Zero or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Nix file extensions.
func DefaultExtensions() []string {
	return []string{".nix"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
