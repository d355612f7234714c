package lint

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/nixlint/pkg/fix"
	"github.com/yaklabco/nixlint/pkg/fsutil"
	"github.com/yaklabco/nixlint/pkg/parser"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// DefaultMaxFixPasses bounds the fix loop. Each pass applies only
// non-overlapping edits and re-lints, so suggestions skipped for overlap are
// resolved on the next pass; the bound guards against rule pairs that keep
// reintroducing each other's trigger.
const DefaultMaxFixPasses = 10

// PipelineOptions controls per-file processing.
type PipelineOptions struct {
	// Fix applies accepted suggestions to the content.
	Fix bool

	// DryRun computes fixed content without writing it back.
	DryRun bool

	// MaxFixPasses overrides DefaultMaxFixPasses when positive.
	MaxFixPasses int
}

// PipelineResult is the outcome of processing one file.
type PipelineResult struct {
	// Path is the processed file path.
	Path string

	// Tree is the syntax tree of the final pass.
	Tree *syntax.Tree

	// Reports are the reports of the final pass, in source order.
	Reports []Report

	// ParseErrors are syntax errors from the final parse. The tree is
	// still lossless and linted; malformed regions simply match no rules.
	ParseErrors []parser.ParseError

	// Modified is true if fixing changed the content.
	Modified bool

	// ModifiedContent is the content after all fix passes (nil if
	// unmodified).
	ModifiedContent []byte

	// Written is true if the file was written back to disk.
	Written bool

	// FixPasses is the number of lint+fix passes performed.
	FixPasses int

	// EditsApplied is the total number of edits applied across passes.
	EditsApplied int
}

// HasIssues returns true if the final pass produced any reports.
func (pr *PipelineResult) HasIssues() bool {
	return len(pr.Reports) > 0
}

// FixableCount returns the number of reports carrying a suggestion.
func (pr *PipelineResult) FixableCount() int {
	count := 0
	for i := range pr.Reports {
		if pr.Reports[i].HasSuggestion() {
			count++
		}
	}
	return count
}

// Pipeline processes files: parse, lint, and optionally fix and write back.
type Pipeline struct {
	// Engine runs lint passes.
	Engine *Engine

	// Session is the read-only pass context shared by all files of a run.
	Session *Session
}

// NewPipeline creates a pipeline around an engine and session.
func NewPipeline(engine *Engine, sess *Session) *Pipeline {
	return &Pipeline{Engine: engine, Session: sess}
}

// ProcessFile reads, processes, and (in fix mode) atomically rewrites one
// file.
func (pl *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pr, err := pl.Process(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}

	if pr.Modified && opts.Fix && !opts.DryRun {
		info, statErr := os.Stat(path)
		mode := os.FileMode(0)
		if statErr == nil {
			mode = info.Mode().Perm()
		}
		if err := fsutil.WriteAtomic(ctx, path, pr.ModifiedContent, mode); err != nil {
			return pr, fmt.Errorf("write fixed %s: %w", path, err)
		}
		pr.Written = true
	}

	return pr, nil
}

// Process parses and lints content, iterating fix passes when enabled. Each
// pass re-parses so that edits never target a stale offset space.
func (pl *Pipeline) Process(ctx context.Context, path string, content []byte, opts PipelineOptions) (*PipelineResult, error) {
	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}
	if !opts.Fix {
		maxPasses = 1
	}

	pr := &PipelineResult{Path: path}
	original := content

	for pass := 0; pass < maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return pr, fmt.Errorf("processing cancelled: %w", err)
		}

		tree, parseErrs := parser.Parse(path, content)
		reports, err := pl.Engine.Run(tree, pl.Session)
		if err != nil {
			return pr, err
		}

		pr.Tree = tree
		pr.Reports = reports
		pr.ParseErrors = parseErrs
		pr.FixPasses = pass + 1

		if !opts.Fix {
			return pr, nil
		}

		accepted, _, err := pl.Engine.CollectEdits(reports, len(content))
		if err != nil {
			return pr, fmt.Errorf("prepare edits for %s: %w", path, err)
		}
		if len(accepted) == 0 {
			break
		}

		content = fix.ApplyEdits(content, accepted)
		pr.EditsApplied += len(accepted)
	}

	if pr.EditsApplied > 0 && !bytes.Equal(content, original) {
		pr.Modified = true
		pr.ModifiedContent = content
	}
	return pr, nil
}
