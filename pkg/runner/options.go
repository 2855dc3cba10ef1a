// Package runner formats many Markdown files concurrently: it discovers
// files, renders each one through the CommonMark renderer and reports,
// diffs or writes the results.
package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// Mode selects what happens with each formatted file.
type Mode int

const (
	// ModeStdout keeps the formatted content in the outcome for printing.
	ModeStdout Mode = iota

	// ModeCheck only records whether each file would change.
	ModeCheck

	// ModeDiff records a unified diff for each file that would change.
	ModeDiff

	// ModeWrite replaces changed files on disk.
	ModeWrite
)

var modeNames = map[Mode]string{
	ModeStdout: "stdout",
	ModeCheck:  "check",
	ModeDiff:   "diff",
	ModeWrite:  "write",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// FailsOnChange reports whether a pending change is a failure in this mode.
func (m Mode) FailsOnChange() bool {
	return m == ModeCheck || m == ModeDiff
}

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode parses a mode name as printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return ModeStdout, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options controls a run.
type Options struct {
	// Paths are files or directories to format. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process directory.
	WorkingDir string

	// Extensions lists the Markdown extensions, lowercase with leading dot.
	// Empty means DefaultExtensions.
	Extensions []string

	// ExcludeGlobs skip matching files and directories, relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs caps the number of concurrent workers; 0 or less means NumCPU.
	Jobs int

	Mode Mode

	// Format controls parsing and rendering of each file.
	Format FormatOptions

	// Backup selects the backup kept for files replaced in ModeWrite.
	Backup fsutil.BackupMode
}

// FormatOptions controls how a single document is formatted.
type FormatOptions struct {
	Render commonmark.Options

	// InferCodeLanguage labels unlabeled fenced code blocks.
	InferCodeLanguage bool
}

// DefaultExtensions returns the extensions treated as Markdown by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
