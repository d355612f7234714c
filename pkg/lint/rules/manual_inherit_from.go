package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ManualInheritFromRule flags bindings of the form `a = base.a;` (and
// `a = base.a.anything;`): extracting an attribute of a set into scope is
// better written as `inherit (base) a;`.
type ManualInheritFromRule struct {
	lint.Meta
}

// NewManualInheritFromRule creates the manual_inherit_from rule.
func NewManualInheritFromRule() *ManualInheritFromRule {
	return &ManualInheritFromRule{
		Meta: lint.NewMeta(
			"manual_inherit_from",
			4,
			"Assignment instead of inherit from",
			syntax.NodeAttrpathValue,
		),
	}
}

// Validate matches a binding whose single-segment key equals the first
// selected segment of a selection value. Only the first segment is compared;
// segments after it never affect the outcome, and the base is always the
// sub-expression preceding the first dot, however complex it is.
func (r *ManualInheritFromRule) Validate(el syntax.Element, _ *lint.Session) *lint.Report {
	node := el.Node
	if node == nil {
		return nil
	}
	binding, ok := syntax.CastAttrpathValue(node)
	if !ok {
		return nil
	}
	path, ok := binding.Attrpath()
	if !ok {
		return nil
	}
	attrs := path.Attrs()
	if len(attrs) != 1 {
		return nil
	}
	key, ok := syntax.CastIdent(attrs[0])
	if !ok {
		return nil
	}
	valueNode, ok := binding.Value()
	if !ok {
		return nil
	}
	sel, ok := syntax.CastSelect(valueNode)
	if !ok {
		return nil
	}
	selPath, ok := sel.Attrpath()
	if !ok {
		return nil
	}
	selAttrs := selPath.Attrs()
	if len(selAttrs) == 0 {
		return nil
	}
	first, ok := syntax.CastIdent(selAttrs[0])
	if !ok {
		return nil
	}
	if key.Name() != first.Name() {
		return nil
	}
	// The fix needs the base to splice; a selection without one cannot be
	// rewritten, so the match degrades to nothing rather than promising a
	// suggestion it cannot build.
	base, ok := sel.Expr()
	if !ok {
		return nil
	}

	at := node.Range
	replacement := syntax.InheritFromStmt(base, key.Name())
	return lint.NewReport(r, at, "This assignment is better written with `inherit`").
		WithSuggestion(at, replacement).
		Build()
}
