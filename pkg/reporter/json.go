package reporter

import (
	"context"
	"encoding/json"

	"github.com/yaklabco/nixlint/pkg/runner"
	"github.com/yaklabco/nixlint/pkg/syntax"
)

// JSONReporter renders machine-readable output for CI and editor
// integrations.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

type jsonOutput struct {
	Files []jsonFile `json:"files"`
	Stats jsonStats  `json:"stats"`
}

type jsonFile struct {
	Path    string       `json:"path"`
	Error   string       `json:"error,omitempty"`
	Reports []jsonReport `json:"reports,omitempty"`
}

type jsonReport struct {
	Rule       string          `json:"rule"`
	Code       string          `json:"code"`
	Note       string          `json:"note"`
	Severity   string          `json:"severity"`
	Message    string          `json:"message"`
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Line       int             `json:"line"`
	Column     int             `json:"column"`
	Suggestion *jsonSuggestion `json:"suggestion,omitempty"`
}

type jsonSuggestion struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Replacement string `json:"replacement"`
}

type jsonStats struct {
	FilesProcessed  int `json:"files_processed"`
	FilesWithIssues int `json:"files_with_issues"`
	FilesModified   int `json:"files_modified"`
	Reports         int `json:"reports"`
	Fixable         int `json:"fixable"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	out := jsonOutput{Files: make([]jsonFile, 0)}
	var total int

	if result != nil {
		out.Stats = jsonStats{
			FilesProcessed:  result.Stats.FilesProcessed,
			FilesWithIssues: result.Stats.FilesWithIssues,
			FilesModified:   result.Stats.FilesModified,
			Reports:         result.Stats.ReportsTotal,
			Fixable:         result.Stats.FixableTotal,
		}

		for _, file := range result.Files {
			jf := jsonFile{Path: file.Path}
			if file.Error != nil {
				jf.Error = file.Error.Error()
				out.Files = append(out.Files, jf)
				continue
			}
			if file.Result == nil {
				out.Files = append(out.Files, jf)
				continue
			}
			for i := range file.Result.Reports {
				report := &file.Result.Reports[i]
				pos := position(file.Result.Tree, report.Range.Start)
				jr := jsonReport{
					Rule:     report.RuleName,
					Code:     RuleTag(report.Code),
					Note:     report.Note,
					Severity: string(report.Severity),
					Message:  report.Message,
					Start:    report.Range.Start,
					End:      report.Range.End,
					Line:     pos.Line,
					Column:   pos.Column,
				}
				if report.Suggestion != nil {
					jr.Suggestion = &jsonSuggestion{
						Start:       report.Suggestion.Range.Start,
						End:         report.Suggestion.Range.End,
						Replacement: syntax.Render(report.Suggestion.ReplaceWith),
					}
				}
				jf.Reports = append(jf.Reports, jr)
				total++
			}
			out.Files = append(out.Files, jf)
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return total, err
	}
	return total, nil
}
