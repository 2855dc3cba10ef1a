package runner

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gomdfmt/internal/logging"
	"github.com/yaklabco/gomdfmt/pkg/diff"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
)

// Runner formats files with a shared Formatter.
type Runner struct {
	formatter *Formatter
}

// New creates a Runner.
func New(formatter *Formatter) *Runner {
	return &Runner{formatter: formatter}
}

// Run discovers files under opts.Paths and formats them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// Per-file failures are recorded in the outcome; the returned error is only
// set for discovery failures and cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("formatting",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
		logging.FieldMode, opts.Mode)

	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))
	work := make(chan int)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				outcomes[idx] = r.processFile(ctx, files[idx], opts)
				done[idx] = true
			}
		}()
	}

feed:
	for idx := range files {
		select {
		case <-ctx.Done():
			break feed
		case work <- idx:
		}
	}
	close(work)
	wg.Wait()

	for idx, outcome := range outcomes {
		if !done[idx] {
			continue
		}
		if outcome.Err != nil {
			logger.Debug("file failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Err)
		}
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesErrored, result.Stats.FilesErrored)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// processFile reads, formats and then reports, diffs or writes one file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, stamp, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	formatted, err := r.formatter.Format(ctx, path, content)
	if err != nil {
		outcome.Err = fmt.Errorf("%s: %w", path, err)
		return outcome
	}
	outcome.Labeled = formatted.Labeled
	outcome.Changed = !bytes.Equal(content, formatted.Content)

	switch opts.Mode {
	case ModeStdout:
		outcome.Formatted = formatted.Content
	case ModeDiff:
		if outcome.Changed {
			outcome.Diff = diff.Unified(path, content, formatted.Content)
		}
	case ModeWrite:
		written, err := fsutil.ReplaceFile(ctx, stamp, content, formatted.Content,
			fsutil.ReplaceOptions{Backup: opts.Backup})
		if err != nil {
			outcome.Err = fmt.Errorf("write %s: %w", path, err)
			return outcome
		}
		outcome.Written = written
	case ModeCheck:
	}

	logging.FromContext(ctx).Debug("formatted",
		logging.FieldPath, path,
		logging.FieldChanged, outcome.Changed,
		logging.FieldWritten, outcome.Written,
		logging.FieldLabeled, outcome.Labeled)

	return outcome
}
