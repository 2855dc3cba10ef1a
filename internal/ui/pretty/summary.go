package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 12 files need formatting, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, mode runner.Mode) string {
	var msg string

	switch {
	case stats.FilesDiscovered == 0:
		msg = s.Dim.Render("No Markdown files found")
	case stats.FilesChanged == 0:
		msg = s.Success.Render("All files formatted") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesFormatted, plural(stats.FilesFormatted)))
	case mode == runner.ModeWrite:
		msg = s.Success.Render(fmt.Sprintf("Formatted %d %s", stats.FilesWritten, plural(stats.FilesWritten))) +
			s.Dim.Render(fmt.Sprintf(", %d unchanged", stats.FilesFormatted-stats.FilesChanged))
	default:
		msg = s.Failure.Render(fmt.Sprintf("%d of %d %s need formatting",
			stats.FilesChanged, stats.FilesFormatted, plural(stats.FilesFormatted)))
		if mode == runner.ModeDiff {
			msg += " " + s.DiffAdd.Render(fmt.Sprintf("+%d", stats.Insertions)) +
				" " + s.DiffRemove.Render(fmt.Sprintf("-%d", stats.Deletions))
		}
	}

	if stats.FilesErrored > 0 {
		msg += ", " + s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored))
	}

	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, mode runner.Mode) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Mode:              " + s.SummaryValue.Render(mode.String()) + "\n")
	builder.WriteString("  Files found:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files formatted:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesFormatted)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:     " +
			s.Changed.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}
	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	if stats.Insertions > 0 || stats.Deletions > 0 {
		builder.WriteString("  Lines:             " +
			s.DiffAdd.Render("+"+strconv.Itoa(stats.Insertions)) + " " +
			s.DiffRemove.Render("-"+strconv.Itoa(stats.Deletions)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Formatting failed"))
	case stats.FilesChanged > 0 && mode != runner.ModeWrite:
		builder.WriteString(s.Warning.Render("Files need formatting"))
	default:
		builder.WriteString(s.Success.Render("Formatting passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
