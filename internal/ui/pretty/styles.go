// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// File reporting
	FilePath lipgloss.Style
	Changed  lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newStyle returns an empty style that leaves tabs alone, so diff lines
// are reproduced byte for byte.
func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   newStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: newStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath: newStyle().Bold(true),
		Changed:  newStyle().Foreground(lipgloss.Color("11")),

		DiffHeader:  newStyle().Bold(true),
		DiffHunk:    newStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     newStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  newStyle().Foreground(lipgloss.Color("9")),
		DiffContext: newStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: newStyle().Bold(true),
		SummaryValue: newStyle(),
		Success:      newStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      newStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  newStyle().Foreground(lipgloss.Color("8")),
		Bold: newStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := newStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		FilePath:     plain,
		Changed:      plain,
		DiffHeader:   plain,
		DiffHunk:     plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		DiffContext:  plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
