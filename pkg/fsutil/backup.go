package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	// BackupNone disables backups.
	BackupNone BackupMode = "none"

	// BackupSidecar stores the original next to the file with BackupSuffix.
	BackupSidecar BackupMode = "sidecar"
)

// BackupSuffix is appended to the file name in sidecar mode.
const BackupSuffix = ".gomdfmt.bak"

// ErrUnknownBackupMode is returned by ParseBackupMode.
var ErrUnknownBackupMode = errors.New("unknown backup mode")

// ParseBackupMode parses "none" or "sidecar". An empty string means sidecar.
func ParseBackupMode(s string) (BackupMode, error) {
	switch BackupMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackupSidecar:
		return BackupSidecar, nil
	case BackupNone:
		return BackupNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackupMode, s)
	}
}

// BackupPath returns where the backup of path is kept, or "" for BackupNone.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupSidecar {
		return path + BackupSuffix
	}
	return ""
}

// CreateBackup saves content as the backup of path. An existing backup is
// never overwritten, so repeated runs keep the oldest original. It reports
// whether a backup was written.
func CreateBackup(ctx context.Context, path string, content []byte, perm os.FileMode, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	_, err := os.Stat(backupPath)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat backup %s: %w", backupPath, err)
	}

	if err := WriteAtomic(ctx, backupPath, content, perm); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
