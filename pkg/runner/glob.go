package runner

import (
	"path"
	"path/filepath"
	"strings"
)

func matchAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// matchGlob reports whether the slash-separated relative path matches
// pattern. A "**" segment matches any number of segments. A pattern without
// a slash is also tried against the base name, so "*.tmp.md" and "vendor"
// match at any depth.
func matchGlob(rel, pattern string) bool {
	rel = filepath.ToSlash(rel)
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "/") {
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}

	return matchSegments(strings.Split(rel, "/"), strings.Split(pattern, "/"))
}

func matchSegments(parts, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(parts) + 1 {
				if matchSegments(parts[i:], rest) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}
		if ok, err := path.Match(pattern[0], parts[0]); err != nil || !ok {
			return false
		}
		parts, pattern = parts[1:], pattern[1:]
	}
	return len(parts) == 0
}
