package reporter

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/nixlint/pkg/config"
)

// Styles holds the lipgloss styles used by the text reporter.
type Styles struct {
	FilePath   lipgloss.Style
	Position   lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
	RuleTag    lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	Summary    lipgloss.Style
}

// NewStyles builds the style set; with color disabled every style is a
// no-op passthrough.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath: plain, Position: plain, Error: plain, Warning: plain,
			Info: plain, RuleTag: plain, Message: plain, Suggestion: plain,
			Summary: plain,
		}
	}
	return &Styles{
		FilePath:   lipgloss.NewStyle().Bold(true),
		Position:   lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		RuleTag:    lipgloss.NewStyle().Faint(true),
		Message:    lipgloss.NewStyle(),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Summary:    lipgloss.NewStyle().Bold(true),
	}
}

// SeverityStyle returns the style for a severity level.
func (s *Styles) SeverityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityInfo:
		return s.Info
	default:
		return s.Warning
	}
}

// IsColorEnabled decides whether to colorize based on the color mode and
// whether the writer is a terminal.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
