package runner

import "github.com/yaklabco/nixlint/pkg/lint"

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the processed file path.
	Path string

	// Result holds the pipeline result (nil on error).
	Result *lint.PipelineResult

	// Error is the file-level failure, if any.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesWithIssues int
	FilesModified   int
	FilesErrored    int
	ReportsTotal    int
	FixableTotal    int
}

// Result collects all outcomes of one run, in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesProcessed++

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}
	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	if outcome.Result.Modified {
		r.Stats.FilesModified++
	}
	r.Stats.ReportsTotal += len(outcome.Result.Reports)
	r.Stats.FixableTotal += outcome.Result.FixableCount()
}

// HasIssues returns true if any file produced reports.
func (r *Result) HasIssues() bool {
	return r.Stats.ReportsTotal > 0
}

// HasErrors returns true if any file failed to process.
func (r *Result) HasErrors() bool {
	return r.Stats.FilesErrored > 0
}
