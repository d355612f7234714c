package logging

// Field name constants for structured logging.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldConfig = "config"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesWithIssues = "files_with_issues"
	FieldReportsTotal    = "reports_total"
	FieldFilesModified   = "files_modified"

	FieldRule     = "rule"
	FieldSeverity = "severity"
	FieldVersion  = "version"
)
