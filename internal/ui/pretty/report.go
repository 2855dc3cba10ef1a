package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/diff"
)

// FormatDiff renders a unified diff with colored lines. With colors
// disabled the result is identical to d.String().
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")

	for _, hunk := range d.Hunks {
		builder.WriteString(s.DiffHunk.Render(hunk.Header()) + "\n")
		for _, line := range hunk.Lines {
			builder.WriteString(s.diffLine(line) + "\n")
			if line.NoEOL {
				builder.WriteString(s.Dim.Render(`\ No newline at end of file`) + "\n")
			}
		}
	}

	return builder.String()
}

func (s *Styles) diffLine(line diff.Line) string {
	switch line.Kind {
	case diff.LineInsert:
		return s.DiffAdd.Render("+" + line.Text)
	case diff.LineDelete:
		return s.DiffRemove.Render("-" + line.Text)
	default:
		return s.DiffContext.Render(" " + line.Text)
	}
}

// FormatChangedFile formats one line of check-mode output.
func (s *Styles) FormatChangedFile(path string) string {
	return s.Changed.Render(path) + "\n"
}

// FormatWrittenFile formats one line of write-mode output.
func (s *Styles) FormatWrittenFile(path string) string {
	return s.Dim.Render("formatted ") + s.FilePath.Render(path) + "\n"
}

// FormatFileError formats a per-file failure.
func (s *Styles) FormatFileError(err error) string {
	return s.Error.Render("error:") + " " + err.Error() + "\n"
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, insertions, deletions int) string {
	header := s.FilePath.Render(path)
	if insertions > 0 || deletions > 0 {
		header += " " + s.DiffAdd.Render(fmt.Sprintf("+%d", insertions)) +
			" " + s.DiffRemove.Render(fmt.Sprintf("-%d", deletions))
	}
	return header
}
