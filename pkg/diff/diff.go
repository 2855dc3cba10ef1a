// Package diff computes unified line diffs between a file's original content
// and its formatted form.
package diff

import (
	"fmt"
	"strconv"
	"strings"
)

// LineKind classifies a line in a hunk.
type LineKind int

const (
	// LineContext is a line present in both versions.
	LineContext LineKind = iota

	// LineInsert is a line only present in the formatted version.
	LineInsert

	// LineDelete is a line only present in the original version.
	LineDelete
)

// prefix returns the unified-diff marker for the kind.
func (k LineKind) prefix() byte {
	switch k {
	case LineInsert:
		return '+'
	case LineDelete:
		return '-'
	default:
		return ' '
	}
}

// Line is one line of a hunk, without its trailing newline.
type Line struct {
	Kind LineKind
	Text string

	// NoEOL marks the last line of a file that does not end in a newline.
	NoEOL bool
}

// Hunk is a run of changes with surrounding context. Starts are 1-based.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff is the unified diff of one file.
type Diff struct {
	Path       string
	Hunks      []Hunk
	Insertions int
	Deletions  int
}

// ContextLines is the number of unchanged lines kept around each change.
const ContextLines = 3

// Unified compares before and after line by line. It returns nil when both
// hold the same lines, including the presence of a final newline.
func Unified(path string, before, after []byte) *Diff {
	a, b := splitLines(before), splitLines(after)

	ops := editScript(a, b)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, op := range ops {
		switch op.Kind {
		case LineInsert:
			d.Insertions++
		case LineDelete:
			d.Deletions++
		}
	}
	return d
}

// HasChanges reports whether d holds any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders d in unified format with a/ and b/ path prefixes.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range d.Hunks {
		sb.WriteString(h.Header())
		sb.WriteByte('\n')
		for _, line := range h.Lines {
			sb.WriteByte(line.Kind.prefix())
			sb.WriteString(line.Text)
			sb.WriteByte('\n')
			if line.NoEOL {
				sb.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}

// Header returns the "@@ -l,s +l,s @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", hunkRange(h.OldStart, h.OldCount), hunkRange(h.NewStart, h.NewCount))
}

// hunkRange follows GNU diff: a single line omits the count and an empty
// range names the line before it.
func hunkRange(start, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", start-1)
	case 1:
		return strconv.Itoa(start)
	default:
		return fmt.Sprintf("%d,%d", start, count)
	}
}

type line struct {
	text  string
	noEOL bool
}

func splitLines(content []byte) []line {
	if len(content) == 0 {
		return nil
	}

	parts := strings.Split(string(content), "\n")
	last := len(parts) - 1
	lines := make([]line, 0, len(parts))
	for i, p := range parts {
		if i == last {
			if p != "" {
				lines = append(lines, line{text: p, noEOL: true})
			}
			break
		}
		lines = append(lines, line{text: p})
	}
	return lines
}

// editScript returns the full sequence of context, delete and insert lines
// turning a into b, derived from a longest-common-subsequence table.
func editScript(a, b []line) []Line {
	// suffix[i][j] is the LCS length of a[i:] and b[j:].
	suffix := make([][]int, len(a)+1)
	for i := range suffix {
		suffix[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				suffix[i][j] = suffix[i+1][j+1] + 1
			} else {
				suffix[i][j] = max(suffix[i+1][j], suffix[i][j+1])
			}
		}
	}

	ops := make([]Line, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			ops = append(ops, Line{Kind: LineContext, Text: a[i].text, NoEOL: a[i].noEOL})
			i++
			j++
		case j >= len(b) || (i < len(a) && suffix[i+1][j] >= suffix[i][j+1]):
			ops = append(ops, Line{Kind: LineDelete, Text: a[i].text, NoEOL: a[i].noEOL})
			i++
		default:
			ops = append(ops, Line{Kind: LineInsert, Text: b[j].text, NoEOL: b[j].noEOL})
			j++
		}
	}
	return ops
}

// groupHunks splits the edit script into hunks, merging changes separated by
// at most 2*ContextLines unchanged lines.
func groupHunks(ops []Line) []Hunk {
	var hunks []Hunk

	oldLine, newLine := 1, 1
	start := -1
	lastChange := -1
	var hunkOld, hunkNew int

	flush := func(end int) {
		h := Hunk{OldStart: hunkOld, NewStart: hunkNew, Lines: ops[start:end]}
		for _, op := range h.Lines {
			if op.Kind != LineInsert {
				h.OldCount++
			}
			if op.Kind != LineDelete {
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
	}

	oldAt := make([]int, len(ops))
	newAt := make([]int, len(ops))
	for idx, op := range ops {
		oldAt[idx], newAt[idx] = oldLine, newLine
		if op.Kind != LineInsert {
			oldLine++
		}
		if op.Kind != LineDelete {
			newLine++
		}
	}

	for idx, op := range ops {
		if op.Kind == LineContext {
			continue
		}
		if start >= 0 && idx-lastChange-1 > 2*ContextLines {
			flush(lastChange + 1 + ContextLines)
			start = -1
		}
		if start < 0 {
			start = max(0, idx-ContextLines)
			hunkOld, hunkNew = oldAt[start], newAt[start]
		}
		lastChange = idx
	}
	if start >= 0 {
		flush(min(len(ops), lastChange+1+ContextLines))
	}

	return hunks
}
