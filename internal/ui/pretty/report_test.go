package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdfmt/internal/ui/pretty"
	"github.com/yaklabco/gomdfmt/pkg/diff"
)

func TestFormatDiff_PlainMatchesString(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		before string
		after  string
	}{
		{name: "replace", before: "Title\n=====\n", after: "# Title\n"},
		{name: "missing final newline", before: "a\nb", after: "a\nb\n"},
		{name: "insertion", before: "a\nc\n", after: "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := diff.Unified("/docs/readme.md", []byte(tt.before), []byte(tt.after))
			assert.Equal(t, d.String(), styles.FormatDiff(d))
		})
	}
}

func TestFormatDiff_NoChanges(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	assert.Empty(t, styles.FormatDiff(nil))
	assert.Empty(t, styles.FormatDiff(diff.Unified("a.md", []byte("x\n"), []byte("x\n"))))
}

func TestFormatFileLines(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "docs/a.md\n", styles.FormatChangedFile("docs/a.md"))
	assert.Equal(t, "formatted docs/a.md\n", styles.FormatWrittenFile("docs/a.md"))
	assert.Equal(t, "error: a.md: boom\n", styles.FormatFileError(errors.New("a.md: boom")))
	assert.Equal(t, "a.md +2 -1", styles.FormatFileHeader("a.md", 2, 1))
	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0, 0))
}

func TestFormatDiff_KeepsTabs(t *testing.T) {
	t.Parallel()

	d := diff.Unified("a.md", []byte("\tcode\n"), []byte("    code\n"))
	assert.Contains(t, pretty.NewStyles(false).FormatDiff(d), "-\tcode\n")
}
