package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomdfmt/pkg/langdetect"
	"github.com/yaklabco/gomdfmt/pkg/parser/goldmark"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// Formatter turns Markdown source into normalized CommonMark. It is safe for
// concurrent use.
type Formatter struct {
	parser *goldmark.Parser
	opts   FormatOptions
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(opts FormatOptions) *Formatter {
	return &Formatter{parser: goldmark.New(), opts: opts}
}

// Formatted is the product of formatting one document.
type Formatted struct {
	Content []byte

	// Labeled counts code blocks given an inferred info string.
	Labeled int
}

// Format parses content and renders it back to CommonMark. The path is only
// used in error messages.
func (f *Formatter) Format(ctx context.Context, path string, content []byte) (Formatted, error) {
	snapshot, err := f.parser.Parse(ctx, path, content)
	if err != nil {
		return Formatted{}, fmt.Errorf("parse: %w", err)
	}

	var labeled int
	if f.opts.InferCodeLanguage {
		labeled = langdetect.InferInfoStrings(snapshot.Root)
	}

	out, err := commonmark.Render(snapshot.Root, f.opts.Render)
	if err != nil {
		return Formatted{}, fmt.Errorf("render: %w", err)
	}

	return Formatted{Content: out, Labeled: labeled}, nil
}
