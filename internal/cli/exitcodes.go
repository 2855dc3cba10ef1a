package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/yaklabco/gomdfmt/internal/configloader"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	goldmarkparser "github.com/yaklabco/gomdfmt/pkg/parser/goldmark"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// Exit codes for gomdfmt, following sysexits.h where one applies.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNeedsFormatting indicates --check or --diff found files that would change.
	ExitNeedsFormatting = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors or undecodable input.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNeedsFormatting is returned when --check or --diff finds unformatted files.
var ErrNeedsFormatting = errors.New("files need formatting")

// ExitError attaches an exit code to an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitInvalidUsage, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return classify(err)
}

// classify picks the exit code for an error that carries no explicit code.
func classify(err error) int {
	var unsupported *goldmarkparser.UnsupportedNodeError

	switch {
	case errors.Is(err, ErrNeedsFormatting):
		return ExitNeedsFormatting
	case errors.Is(err, commonmark.ErrInternalConsistency), errors.As(err, &unsupported):
		return ExitInternalError
	case errors.Is(err, configloader.ErrInvalidConfig), errors.Is(err, commonmark.ErrInvalidUTF8):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission),
		errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
