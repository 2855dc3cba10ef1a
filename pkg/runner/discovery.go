package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the sorted, deduplicated absolute paths of the Markdown
// files named by opts.Paths. Directories are walked recursively; hidden
// entries below them and entries matching ExcludeGlobs are skipped. A file
// named explicitly is kept when its extension matches and it is not excluded.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		ctx:     ctx,
		workDir: workDir,
		exts:    make(map[string]struct{}),
		exclude: opts.ExcludeGlobs,
		follow:  opts.FollowSymlinks,
		seen:    make(map[string]struct{}),
	}
	for _, ext := range opts.extensions() {
		d.exts[strings.ToLower(ext)] = struct{}{}
	}

	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(abs); err != nil {
				return nil, err
			}
			continue
		}
		if d.wantFile(abs) {
			d.add(abs)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	ctx     context.Context //nolint:containedctx // scoped to one Discover call
	workDir string
	exts    map[string]struct{}
	exclude []string
	follow  bool
	seen    map[string]struct{}
	files   []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (d *discoverer) wantFile(path string) bool {
	if _, ok := d.exts[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}
	return !matchAny(d.rel(path), d.exclude)
}

func (d *discoverer) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || (path != root && matchAny(d.rel(path), d.exclude)) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(path)
		}

		if d.wantFile(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return nil
}

// symlink handles a link met during a walk. Broken links are skipped; links
// to directories are walked (at their target) only when following is on.
func (d *discoverer) symlink(path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken links are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}

	if info.IsDir() {
		if !d.follow {
			return nil
		}
		return d.walk(target)
	}

	if d.wantFile(path) {
		d.add(path)
	}
	return nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}
