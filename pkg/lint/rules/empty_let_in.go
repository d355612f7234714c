package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// EmptyLetInRule flags `let in body` expressions that declare no bindings;
// the wrapper contributes nothing and the body can stand on its own.
type EmptyLetInRule struct {
	lint.Meta
}

// NewEmptyLetInRule creates the empty_let_in rule.
func NewEmptyLetInRule() *EmptyLetInRule {
	return &EmptyLetInRule{
		Meta: lint.NewMeta(
			"empty_let_in",
			2,
			"Useless let-in expression",
			syntax.NodeLetIn,
		),
	}
}

// Validate matches a let-in with zero bindings and suggests replacing the
// whole expression with its body.
func (r *EmptyLetInRule) Validate(el syntax.Element, _ *lint.Session) *lint.Report {
	node := el.Node
	if node == nil {
		return nil
	}
	letIn, ok := syntax.CastLetIn(node)
	if !ok {
		return nil
	}
	if len(letIn.Bindings()) != 0 {
		return nil
	}
	body, ok := letIn.Body()
	if !ok {
		return nil
	}

	at := node.Range
	replacement := syntax.Rebase(syntax.CloneDetached(body), 0)
	return lint.NewReport(r, at, "This let-in expression has no entries").
		WithSuggestion(at, replacement).
		Build()
}
