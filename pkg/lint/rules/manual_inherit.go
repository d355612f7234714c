// Package rules contains the built-in lint rules. Every rule follows the
// same guarded matching shape: a chain of narrowing steps that each either
// down-cast, extract a child, or assert a condition, returning nil on the
// first failure with no side effects. Only a fully successful chain builds a
// report.
package rules

import (
	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// ManualInheritRule flags bindings of the form `a = a;`. Bringing an
// attribute from an enclosing scope into the current one is better written
// with an inherit statement.
type ManualInheritRule struct {
	lint.Meta
}

// NewManualInheritRule creates the manual_inherit rule.
func NewManualInheritRule() *ManualInheritRule {
	return &ManualInheritRule{
		Meta: lint.NewMeta(
			"manual_inherit",
			3,
			"Assignment instead of inherit",
			syntax.NodeAttrpathValue,
		),
	}
}

// Validate matches a binding whose key path is exactly one identifier and
// whose value is a bare identifier with the same text. A key path with more
// than one segment never matches: inherit can only bind a bare name.
func (r *ManualInheritRule) Validate(el syntax.Element, _ *lint.Session) *lint.Report {
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
	value, ok := syntax.CastIdent(valueNode)
	if !ok {
		return nil
	}
	if key.Name() != value.Name() {
		return nil
	}

	at := node.Range
	replacement := syntax.InheritStmt(key.Name())
	return lint.NewReport(r, at, "This assignment is better written with `inherit`").
		WithSuggestion(at, replacement).
		Build()
}
