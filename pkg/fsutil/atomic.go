package fsutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when a write is not given a mode.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content by writing a temp file in the same
// directory, syncing it and renaming it over the target. On failure the
// target is left untouched and the temp file removed.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".gomdfmt-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// ReplaceOptions controls ReplaceFile.
type ReplaceOptions struct {
	// Backup selects where the original content is saved before writing.
	Backup BackupMode
}

// ReplaceFile writes formatted over the file that produced original and
// stamp. Nothing is written when formatted equals original. It returns
// ErrModified if the file changed on disk since it was read, and reports
// whether the file was written.
func ReplaceFile(ctx context.Context, stamp *Stamp, original, formatted []byte, opts ReplaceOptions) (bool, error) {
	if stamp == nil {
		return false, ErrNilStamp
	}
	if bytes.Equal(original, formatted) {
		return false, nil
	}

	changed, err := stamp.Changed(ctx)
	if err != nil {
		return false, err
	}
	if changed {
		return false, fmt.Errorf("%w: %s", ErrModified, stamp.Path)
	}

	if _, err := CreateBackup(ctx, stamp.Path, original, stamp.Mode, opts.Backup); err != nil {
		return false, err
	}

	if err := WriteAtomic(ctx, stamp.Path, formatted, stamp.Mode); err != nil {
		return false, err
	}
	return true, nil
}
