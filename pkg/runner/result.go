package runner

import (
	"errors"

	"github.com/yaklabco/gomdfmt/pkg/diff"
)

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	Path string

	// Changed reports whether formatting alters the file.
	Changed bool

	// Written reports whether the file was replaced (ModeWrite only).
	Written bool

	// Formatted holds the output in ModeStdout.
	Formatted []byte

	// Diff holds the unified diff in ModeDiff when Changed.
	Diff *diff.Diff

	// Labeled counts code blocks given an inferred info string.
	Labeled int

	// Err is set when the file could not be formatted or written.
	Err error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesFormatted  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
	Insertions      int
	Deletions       int
}

// Result is the outcome of Run. Files follow the discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file would change or was changed.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Err joins the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesFormatted++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Diff != nil {
		r.Stats.Insertions += outcome.Diff.Insertions
		r.Stats.Deletions += outcome.Diff.Deletions
	}
}
