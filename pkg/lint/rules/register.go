package rules

import "github.com/yaklabco/nixlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// The table below is the single declarative catalog of (name, code, note,
// kinds); each constructor carries its own metadata.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewEmptyLetInRule())         // empty_let_in (2)
	registry.Register(NewManualInheritRule())      // manual_inherit (3)
	registry.Register(NewManualInheritFromRule())  // manual_inherit_from (4)
	registry.Register(NewUselessParensRule())      // useless_parens (8)
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
