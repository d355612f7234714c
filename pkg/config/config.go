// Package config defines configuration types for nixlint. These are pure
// data structures; loading and discovery live in yaml.go.
package config

// Severity represents the severity level of a lint report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration, keyed by rule name.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration for a nixlint run.
type Config struct {
	// NixVersion is the targeted Nix version (e.g. "2.4"); rules may gate
	// on it. Empty means "latest".
	NixVersion string `yaml:"nix_version"`

	// Rules contains per-rule configuration keyed by rule name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// CLI-level options, not persisted to config files.

	// Fix enables applying suggestions to files.
	Fix bool `yaml:"-"`

	// DryRun reports what would be fixed without writing.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel file workers (0 = auto).
	Jobs int `yaml:"-"`

	// EnableRules contains rule names to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule names to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Rules:  make(map[string]RuleConfig),
		Format: FormatText,
	}
}
