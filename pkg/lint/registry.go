package lint

import (
	"cmp"
	"slices"
	"sync"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

// Registry maps syntax kinds to the rules subscribed to them. It is built
// once before any pass; registration and dispatch phases are disjoint, so
// lookups during a pass take no lock path that can contend with writers.
type Registry struct {
	mu     sync.RWMutex
	byKind map[syntax.SyntaxKind][]Rule
	byName map[string]Rule
	byCode map[int]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[syntax.SyntaxKind][]Rule),
		byName: make(map[string]Rule),
		byCode: make(map[int]Rule),
	}
}

// Register adds a rule under every kind in its MatchKinds set. A rule with
// an already-registered name replaces the previous entry in the name and
// code indexes but keeps both in kind dispatch order; well-formed rule sets
// use unique names.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range rule.MatchKinds() {
		r.byKind[kind] = append(r.byKind[kind], rule)
	}
	r.byName[rule.Name()] = rule
	r.byCode[rule.Code()] = rule
}

// RulesFor returns the rules subscribed to the given kind, in registration
// order. Rules must not depend on dispatch order: a well-formed rule never
// relies on another rule having already fired on the same node.
func (r *Registry) RulesFor(kind syntax.SyntaxKind) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byKind[kind]
}

// GetByName retrieves a rule by its unique name.
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// GetByCode retrieves a rule by its numeric code.
func (r *Registry) GetByCode(code int) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byCode[code]
	return rule, ok
}

// Rules returns all registered rules sorted by code for deterministic
// listings.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byName))
	for _, rule := range r.byName {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.Code(), b.Code())
	})
	return result
}

// DefaultRegistry is the global registry for built-in rules.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
