package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// UselessParensRule flags parentheses that add no grouping: around a binding
// value or around a let-in body. It subscribes to two kinds, so it also
// exercises multi-kind dispatch.
type UselessParensRule struct {
	lint.Meta
}

// NewUselessParensRule creates the useless_parens rule.
func NewUselessParensRule() *UselessParensRule {
	return &UselessParensRule{
		Meta: lint.NewMeta(
			"useless_parens",
			8,
			"Useless parentheses",
			syntax.NodeAttrpathValue, syntax.NodeLetIn,
		),
	}
}

// Validate matches a parenthesized binding value or let-in body and suggests
// dropping the parentheses, keeping only the inner expression.
func (r *UselessParensRule) Validate(el syntax.Element, _ *lint.Session) *lint.Report {
	node := el.Node
	if node == nil {
		return nil
	}

	var wrapped *syntax.Node
	switch node.Kind {
	case syntax.NodeAttrpathValue:
		binding, ok := syntax.CastAttrpathValue(node)
		if !ok {
			return nil
		}
		value, ok := binding.Value()
		if !ok {
			return nil
		}
		wrapped = value
	case syntax.NodeLetIn:
		letIn, ok := syntax.CastLetIn(node)
		if !ok {
			return nil
		}
		body, ok := letIn.Body()
		if !ok {
			return nil
		}
		wrapped = body
	default:
		return nil
	}

	paren, ok := syntax.CastParen(wrapped)
	if !ok {
		return nil
	}
	inner, ok := paren.Expr()
	if !ok {
		return nil
	}

	at := paren.Syntax().Range
	replacement := syntax.Rebase(syntax.CloneDetached(inner), 0)
	return lint.NewReport(r, at, "These parentheses can be omitted").
		WithSuggestion(at, replacement).
		Build()
}
