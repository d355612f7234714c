package lint

import "github.com/yaklabco/nixlint/pkg/config"

// ResolvedRule pairs a rule with its configuration for one run.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be dispatched.
	Enabled bool

	// Severity is the resolved severity for reports from this rule.
	Severity config.Severity

	// AutoFix indicates whether this rule's suggestions are applied when
	// fixing.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules run and with what severity, based on
// the registry and configuration. Only enabled rules are returned.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule
	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}
	return resolved
}

func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  true,
		Severity: config.SeverityWarning,
		AutoFix:  true,
	}

	if cfg == nil {
		return rr
	}

	for _, name := range cfg.EnableRules {
		if name == rule.Name() {
			rr.Enabled = true
			break
		}
	}
	for _, name := range cfg.DisableRules {
		if name == rule.Name() {
			rr.Enabled = false
			break
		}
	}

	if ruleCfg, ok := cfg.Rules[rule.Name()]; ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix
		}
	}

	return rr
}
