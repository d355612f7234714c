// Package lint provides the rule contract, registry, dispatcher, and report
// model for nixlint.
package lint

import "github.com/yaklabco/nixlint/pkg/syntax"

// Rule is a named, stateless lint strategy. Implementations subscribe to one
// or more syntax kinds and are invoked once per matching element during a
// pass.
//
// Validate must be a pure function of (element, session): no hidden mutable
// state, no side effects on a failed match. Returning nil means "no match"
// and is the dominant, expected outcome; a rule that cannot find the shape
// it expects, including when children the grammar normally guarantees are
// missing, returns nil rather than failing the pass. A rule must never
// return a report promising a suggestion it could not fully construct.
type Rule interface {
	// Name returns the unique rule identifier (e.g. "manual_inherit").
	Name() string

	// Code returns the stable numeric id for the rule.
	Code() int

	// Note returns a short description of what the rule checks.
	Note() string

	// MatchKinds returns the syntax kinds this rule subscribes to.
	MatchKinds() []syntax.SyntaxKind

	// Validate inspects one element and returns a report on match, nil
	// otherwise.
	Validate(el syntax.Element, sess *Session) *Report
}

// Meta carries rule identity. Embed it in rule implementations; it replaces
// the attribute-macro metadata of other linters with an explicit value built
// at construction time.
type Meta struct {
	name  string
	code  int
	note  string
	kinds []syntax.SyntaxKind
}

// NewMeta creates rule metadata for embedding.
func NewMeta(name string, code int, note string, kinds ...syntax.SyntaxKind) Meta {
	return Meta{name: name, code: code, note: note, kinds: kinds}
}

// Name returns the unique rule identifier.
func (m *Meta) Name() string {
	return m.name
}

// Code returns the stable numeric id.
func (m *Meta) Code() int {
	return m.code
}

// Note returns the short rule description.
func (m *Meta) Note() string {
	return m.note
}

// MatchKinds returns the subscribed syntax kinds.
func (m *Meta) MatchKinds() []syntax.SyntaxKind {
	return m.kinds
}
