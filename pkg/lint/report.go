package lint

import (
	"fmt"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/fix"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Report is one diagnostic produced by a rule on a match.
type Report struct {
	// RuleName identifies the producing rule.
	RuleName string

	// Code is the rule's stable numeric id.
	Code int

	// Note is the rule's short description.
	Note string

	// Severity is the resolved severity for this report.
	Severity config.Severity

	// Range is the triggering source range in byte offsets.
	Range syntax.TextRange

	// Message is the human-readable description of the issue.
	Message string

	// Suggestion is the proposed fix, or nil if the rule has none.
	Suggestion *Suggestion
}

// HasSuggestion returns true if this report carries a fix.
func (r *Report) HasSuggestion() bool {
	return r.Suggestion != nil
}

// Suggestion is a proposed fix: replace the bytes of Range with the rendered
// text of ReplaceWith. The replacement is a syntax subtree rather than raw
// text, so it has correct internal structure and can itself be walked or
// re-linted after substitution. Its range always lies within the node that
// produced the originating report.
type Suggestion struct {
	// Range is the byte range to replace.
	Range syntax.TextRange

	// ReplaceWith is the fully-formed replacement subtree.
	ReplaceWith *syntax.Node
}

// Edit lowers the suggestion to a text edit by rendering the replacement.
func (s *Suggestion) Edit() fix.TextEdit {
	return fix.TextEdit{
		StartOffset: s.Range.Start,
		EndOffset:   s.Range.End,
		NewText:     syntax.Render(s.ReplaceWith),
	}
}

// ReportBuilder constructs reports. Identity fields are filled from the rule
// so individual rules cannot drift from their registered metadata.
type ReportBuilder struct {
	report Report
	err    error
}

// NewReport starts a report for the given rule, range, and message.
func NewReport(rule Rule, at syntax.TextRange, message string) *ReportBuilder {
	b := &ReportBuilder{
		report: Report{
			RuleName: rule.Name(),
			Code:     rule.Code(),
			Note:     rule.Note(),
			Severity: config.SeverityWarning,
			Range:    at,
			Message:  message,
		},
	}
	if message == "" {
		b.err = fmt.Errorf("rule %s: report message must not be empty", rule.Name())
	}
	return b
}

// WithSuggestion attaches a fix replacing at with the rendered replacement.
// The range must be non-empty and the replacement fully formed; violations
// surface from Build rather than producing a half-valid report.
func (b *ReportBuilder) WithSuggestion(at syntax.TextRange, replacement *syntax.Node) *ReportBuilder {
	if b.err != nil {
		return b
	}
	if at.IsEmpty() {
		b.err = fmt.Errorf("rule %s: suggestion range %s is empty", b.report.RuleName, at)
		return b
	}
	if replacement == nil || len(replacement.Children) == 0 {
		b.err = fmt.Errorf("rule %s: suggestion replacement is not fully formed", b.report.RuleName)
		return b
	}
	b.report.Suggestion = &Suggestion{Range: at, ReplaceWith: replacement}
	return b
}

// Build returns the report, or nil if construction was invalid. A nil result
// degrades the match to "no match", upholding the contract that a rule never
// promises a suggestion it cannot construct.
func (b *ReportBuilder) Build() *Report {
	if b.err != nil {
		return nil
	}
	report := b.report
	return &report
}
