package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdfmt/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("# hi\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# hi\n", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("replaces and applies mode", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "old")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "a.md"), []byte("a"), 0))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.md", entries[0].Name())
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		err := fsutil.WriteAtomic(context.Background(), filepath.Join(t.TempDir(), "no", "dir.md"), []byte("x"), 0)
		assert.Error(t, err)
	})
}

func TestReplaceFile(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "* a\n")
		ctx := context.Background()
		original, stamp, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.ReplaceFile(ctx, stamp, original, []byte("  - a\n"), fsutil.ReplaceOptions{Backup: fsutil.BackupNone})
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "  - a\n", string(got))
		assert.NoFileExists(t, path+fsutil.BackupSuffix)
	})

	t.Run("unchanged content is not written", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "same\n")
		ctx := context.Background()
		original, stamp, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.ReplaceFile(ctx, stamp, original, []byte("same\n"), fsutil.ReplaceOptions{Backup: fsutil.BackupSidecar})
		require.NoError(t, err)
		assert.False(t, written)
		assert.NoFileExists(t, path+fsutil.BackupSuffix)
	})

	t.Run("refuses when file changed after read", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "first\n")
		ctx := context.Background()
		original, stamp, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("edited elsewhere\n"), 0o644))

		written, err := fsutil.ReplaceFile(ctx, stamp, original, []byte("first\n\n"), fsutil.ReplaceOptions{})
		require.ErrorIs(t, err, fsutil.ErrModified)
		assert.False(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "edited elsewhere\n", string(got))
	})

	t.Run("sidecar backup keeps original", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "orig")
		ctx := context.Background()
		original, stamp, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.ReplaceFile(ctx, stamp, original, []byte("orig\n"), fsutil.ReplaceOptions{Backup: fsutil.BackupSidecar})
		require.NoError(t, err)
		assert.True(t, written)

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "orig", string(backup))
	})

	t.Run("nil stamp", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReplaceFile(context.Background(), nil, nil, []byte("x"), fsutil.ReplaceOptions{})
		assert.ErrorIs(t, err, fsutil.ErrNilStamp)
	})
}
