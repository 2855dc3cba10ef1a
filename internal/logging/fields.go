package logging

// Field names for structured log entries.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run settings.
	FieldMode  = "mode"
	FieldJobs  = "jobs"
	FieldWidth = "width"

	// Per-file and aggregate outcomes.
	FieldChanged         = "changed"
	FieldWritten         = "written"
	FieldLabeled         = "code_blocks_labeled"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldFilesErrored    = "files_errored"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
