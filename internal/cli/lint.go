package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/internal/logging"
	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/lint"
	_ "github.com/yaklabco/nixlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/nixlint/pkg/reporter"
	"github.com/yaklabco/nixlint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format     string
	fix        bool
	dryRun     bool
	jobs       int
	nixVersion string
	ignore     []string
	enable     []string
	disable    []string
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Nix files",
		Long: `Lint Nix files for antipatterns.

By default, lints all .nix files under the current directory. Specify
paths to lint specific files or directories.

Examples:
  nixlint lint                 # Lint current directory
  nixlint lint default.nix     # Lint a single file
  nixlint lint --fix           # Lint and apply suggestions
  nixlint lint --fix --dry-run # Show what would change without writing
  nixlint lint --format json   # Output as JSON for CI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "apply suggestions to files")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "with --fix, do not write files")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.nixVersion, "nix-version", "", "targeted Nix version (e.g. 2.4)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule names to disable")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.Fix = flags.fix
	cfg.DryRun = flags.dryRun
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Jobs = flags.jobs
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	if flags.nixVersion != "" {
		cfg.NixVersion = flags.nixVersion
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldVersion, cfg.NixVersion,
	)

	engine := lint.NewEngine(lint.DefaultRegistry, cfg)
	sess := lint.NewSession(cfg)
	pipeline := lint.NewPipeline(engine, sess)

	result, err := runner.New(pipeline).Run(ctx, runner.Options{
		Paths:        args,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	rep, err := reporter.New(cfg.Format, reporter.Options{
		Writer:          os.Stdout,
		Color:           colorMode,
		ShowSuggestions: !cfg.Fix,
		ShowSummary:     cfg.Format == config.FormatText,
	})
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if result.HasErrors() {
		return fmt.Errorf("%d file(s) failed to process", result.Stats.FilesErrored)
	}
	if result.HasIssues() {
		return ErrLintIssuesFound
	}
	return nil
}

// loadConfig loads the explicit --config file or discovers one upward from
// the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded configuration", logging.FieldConfig, configPath)
		return cfg, nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, found, err := config.Discover(workDir)
	if err != nil {
		return nil, err
	}
	if found != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, found)
	}
	return cfg, nil
}
