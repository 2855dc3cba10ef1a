// Package fsutil holds the file primitives used when formatting in place:
// reading a file together with a stamp of its state, detecting edits made
// after the read, atomic replacement and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModified indicates the file changed on disk after it was read.
	ErrModified = errors.New("file changed since it was read")

	// ErrNilStamp is returned when a nil Stamp is passed.
	ErrNilStamp = errors.New("nil stamp")
)

// Stamp records the state of a file when it was read.
type Stamp struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Sum is the SHA-256 of the content that was read.
	Sum [sha256.Size]byte
}

// ReadFile reads path and stamps its current state.
func ReadFile(ctx context.Context, path string) ([]byte, *Stamp, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify("stat", path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify("read", path, err)
	}

	return content, &Stamp{
		Path:    path,
		Mode:    stat.Mode().Perm(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Sum:     sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file no longer matches the stamp. A deleted
// file counts as changed. Size and modification time are compared first;
// the content is hashed only when both still match.
func (s *Stamp) Changed(ctx context.Context) (bool, error) {
	if s == nil {
		return false, ErrNilStamp
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check %s: %w", s.Path, err)
	}

	stat, err := os.Stat(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, classify("stat", s.Path, err)
	}
	if stat.Size() != s.Size || !stat.ModTime().Equal(s.ModTime) {
		return true, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, classify("read", s.Path, err)
	}
	return sha256.Sum256(content) != s.Sum, nil
}

func classify(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
