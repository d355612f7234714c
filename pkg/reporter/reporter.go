// Package reporter formats run results for humans and machines.
package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/runner"
)

// Reporter renders a run result. Implementations return the number of
// reports written.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Options controls report rendering.
type Options struct {
	// Writer receives the rendered output.
	Writer io.Writer

	// Color is "auto", "always", or "never".
	Color string

	// ShowSuggestions includes replacement text for fixable reports.
	ShowSuggestions bool

	// ShowSummary appends a one-line run summary.
	ShowSummary bool
}

// New creates a reporter for the given output format.
func New(format config.OutputFormat, opts Options) (Reporter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// RuleTag renders a rule's numeric code in report output (e.g. "W04").
func RuleTag(code int) string {
	return fmt.Sprintf("W%02d", code)
}
