package lint

import (
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// stubRule is a configurable rule for engine and registry tests.
type stubRule struct {
	Meta
	validate func(el syntax.Element, sess *Session) *Report
}

func newStubRule(name string, code int, kinds ...syntax.SyntaxKind) *stubRule {
	return &stubRule{Meta: NewMeta(name, code, "stub rule", kinds...)}
}

func (r *stubRule) Validate(el syntax.Element, sess *Session) *Report {
	if r.validate == nil {
		return nil
	}
	return r.validate(el, sess)
}

// flagIdent builds a rule that reports every identifier node with the given
// text and suggests renaming it.
func flagIdent(name string, code int, match, replacement string) *stubRule {
	r := newStubRule(name, code, syntax.NodeIdent)
	r.validate = func(el syntax.Element, _ *Session) *Report {
		if !el.IsNode() || el.Node.Text() != match {
			return nil
		}
		return NewReport(r, el.Node.Range, "identifier should be renamed").
			WithSuggestion(el.Node.Range, syntax.BuildIdent(replacement)).
			Build()
	}
	return r
}
