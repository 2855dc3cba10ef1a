package goldmark

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// FuzzParse checks that any input yields a well-formed tree the renderer
// accepts, or a typed error. For valid UTF-8 the rendered output must also
// survive a second parse and render unchanged.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"# Heading\n\nParagraph",
		"- a\n- b\n\n1) c\n",
		"> quote\n> > nested",
		"```go\ncode\n```",
		"    indented\n",
		"[link](url \"title\") ![img](src)",
		"<https://example.com> <a@b.co>",
		"*a* **b** `c` <span>",
		"a\\\nb  \nc",
		"&amp; &#35; \\*",
		"<div>\n\n</div>",
		"\xff\xfe",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	p := New()

	f.Fuzz(func(t *testing.T, content []byte) {
		snapshot, err := p.Parse(context.Background(), "fuzz.md", content)
		if err != nil {
			var unsupported *UnsupportedNodeError
			if !errors.As(err, &unsupported) {
				t.Fatalf("Parse() returned untyped error: %v", err)
			}
			return
		}
		if snapshot.Root == nil || snapshot.Root.Kind != mdast.NodeDocument {
			t.Fatal("Parse() returned a snapshot without a document root")
		}

		_, err = commonmark.Render(snapshot.Root, commonmark.Options{InvalidUTF8: commonmark.DecodeReplace})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		if !utf8.Valid(content) {
			return
		}
		for _, width := range []int{0, 20} {
			opts := commonmark.Options{Width: width}
			first, err := commonmark.Render(snapshot.Root, opts)
			if err != nil {
				t.Fatalf("Render(width=%d) error = %v", width, err)
			}
			again, err := p.Parse(context.Background(), "fuzz.md", first)
			if err != nil {
				t.Fatalf("Parse() of rendered output error = %v", err)
			}
			second, err := commonmark.Render(again.Root, opts)
			if err != nil {
				t.Fatalf("Render(width=%d) of reparsed output error = %v", width, err)
			}
			if diff := cmp.Diff(string(first), string(second)); diff != "" {
				t.Errorf("width %d: render is not idempotent (-first +second):\n%s", width, diff)
			}
		}
	})
}
