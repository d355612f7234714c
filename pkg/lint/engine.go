package lint

import (
	"fmt"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/fix"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Engine drives one traversal of a syntax tree, dispatching every node and
// token to the enabled rules subscribed to its kind.
//
// A pass is a pure function of (tree, rules, session): given the same inputs
// it produces the identical report sequence, in source order. Evaluation is
// sequential; because every Validate is pure, reports come out in traversal
// order without any re-sorting step.
type Engine struct {
	registry *Registry
	dispatch map[syntax.SyntaxKind][]ResolvedRule
	autofix  map[string]bool
}

// NewEngine resolves the registry against the configuration and builds the
// kind dispatch table. The engine is immutable after construction and safe
// for concurrent use across files.
func NewEngine(registry *Registry, cfg *config.Config) *Engine {
	e := &Engine{
		registry: registry,
		dispatch: make(map[syntax.SyntaxKind][]ResolvedRule),
		autofix:  make(map[string]bool),
	}
	for _, rr := range ResolveRules(registry, cfg) {
		for _, kind := range rr.Rule.MatchKinds() {
			e.dispatch[kind] = append(e.dispatch[kind], rr)
		}
		e.autofix[rr.Rule.Name()] = rr.AutoFix
	}
	return e
}

// Registry returns the registry this engine was built from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Run performs a pre-order depth-first walk over every node and token of the
// tree and collects the reports of matching rules in traversal order.
//
// The only fatal condition is a structurally corrupt tree (a child range
// escaping its parent), which indicates an upstream parser defect and aborts
// the pass. Rule-level "no match" outcomes never surface as errors: the pass
// always terminates with either the full ordered report list or a single
// structural error, never a silently truncated list.
func (e *Engine) Run(tree *syntax.Tree, sess *Session) ([]Report, error) {
	if err := syntax.Verify(tree); err != nil {
		return nil, fmt.Errorf("lint pass aborted: %w", err)
	}

	var reports []Report

	//nolint:errcheck // the callback never returns an error
	syntax.Walk(tree.Root, func(el syntax.Element) error {
		for _, rr := range e.dispatch[el.Kind()] {
			report := rr.Rule.Validate(el, sess)
			if report == nil {
				continue
			}
			report.Severity = rr.Severity
			reports = append(reports, *report)
		}
		return nil
	})

	return reports, nil
}

// CollectEdits lowers the suggestions of auto-fixable reports to a prepared
// edit batch: validated, sorted, with overlapping edits split off. Skipped
// edits are picked up by re-linting after the accepted ones are applied;
// overlaps are never merged.
func (e *Engine) CollectEdits(reports []Report, contentLen int) (accepted, skipped []fix.TextEdit, err error) {
	var edits []fix.TextEdit
	for i := range reports {
		if reports[i].Suggestion == nil {
			continue
		}
		if !e.autofix[reports[i].RuleName] {
			continue
		}
		edits = append(edits, reports[i].Suggestion.Edit())
	}
	return fix.PrepareEdits(edits, contentLen)
}
