package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/nixlint/pkg/lint"
	"github.com/yaklabco/nixlint/pkg/runner"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

const bufWriterSize = 64 * 1024

// TextReporter formats results as styled terminal output, one line per
// report, grouped by file in discovery order.
type TextReporter struct {
	opts   Options
	styles *Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: NewStyles(IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Summary.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil {
			continue
		}

		for _, perr := range file.Result.ParseErrors {
			pos := position(file.Result.Tree, perr.Offset)
			fmt.Fprintf(r.bw, "%s%s %s %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Position.Render(fmt.Sprintf(":%d:%d:", pos.Line, pos.Column)),
				r.styles.Error.Render("syntax:"),
				perr.Message,
			)
		}

		for i := range file.Result.Reports {
			r.writeReport(file.Path, file.Result.Tree, &file.Result.Reports[i])
			total++
		}
	}

	if r.opts.ShowSummary {
		r.writeSummary(result)
	}
	return total, nil
}

func (r *TextReporter) writeReport(path string, tree *syntax.Tree, report *lint.Report) {
	pos := position(tree, report.Range.Start)
	sevStyle := r.styles.SeverityStyle(report.Severity)

	fmt.Fprintf(r.bw, "%s%s %s %s %s\n",
		r.styles.FilePath.Render(path),
		r.styles.Position.Render(fmt.Sprintf(":%d:%d:", pos.Line, pos.Column)),
		sevStyle.Render(string(report.Severity)+":"),
		r.styles.Message.Render(report.Message),
		r.styles.RuleTag.Render(fmt.Sprintf("[%s/%s]", RuleTag(report.Code), report.RuleName)),
	)

	if r.opts.ShowSuggestions && report.Suggestion != nil {
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Suggestion.Render("fix:"),
			syntax.Render(report.Suggestion.ReplaceWith),
		)
	}
}

func (r *TextReporter) writeSummary(result *runner.Result) {
	s := result.Stats
	line := fmt.Sprintf("%d file(s) checked, %d report(s), %d fixable",
		s.FilesProcessed, s.ReportsTotal, s.FixableTotal)
	if s.FilesModified > 0 {
		line += fmt.Sprintf(", %d file(s) fixed", s.FilesModified)
	}
	fmt.Fprintln(r.bw, r.styles.Summary.Render(line))
}

func position(tree *syntax.Tree, offset int) syntax.Position {
	if tree == nil {
		return syntax.Position{Line: 1, Column: 1}
	}
	return tree.Position(offset)
}
