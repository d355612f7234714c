package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestResolveRulesDefaults(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))

	resolved := ResolveRules(reg, config.NewConfig())
	require.Len(t, resolved, 1)

	rr := resolved[0]
	assert.True(t, rr.Enabled)
	assert.True(t, rr.AutoFix)
	assert.Equal(t, config.SeverityWarning, rr.Severity)
	assert.Nil(t, rr.Config)
}

func TestResolveRulesNilConfig(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))

	resolved := ResolveRules(reg, nil)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Enabled)
}

func TestResolveRulesDisabledByConfig(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))
	reg.Register(newStubRule("beta", 2, syntax.NodeIdent))

	cfg := config.NewConfig()
	cfg.Rules["alpha"] = config.RuleConfig{Enabled: boolPtr(false)}

	resolved := ResolveRules(reg, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, "beta", resolved[0].Rule.Name())
}

func TestResolveRulesCLIDisable(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"alpha"}

	assert.Empty(t, ResolveRules(reg, cfg))
}

func TestResolveRulesConfigOverridesCLIDisable(t *testing.T) {
	// Per-rule config is the most specific setting and wins over the
	// CLI-level disable list.
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"alpha"}
	cfg.Rules["alpha"] = config.RuleConfig{Enabled: boolPtr(true)}

	resolved := ResolveRules(reg, cfg)
	require.Len(t, resolved, 1)
}

func TestResolveRulesSeverityAndAutoFix(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("alpha", 1, syntax.NodeIdent))

	cfg := config.NewConfig()
	cfg.Rules["alpha"] = config.RuleConfig{
		Severity: strPtr("error"),
		AutoFix:  boolPtr(false),
	}

	resolved := ResolveRules(reg, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityError, resolved[0].Severity)
	assert.False(t, resolved[0].AutoFix)
	require.NotNil(t, resolved[0].Config)
}
