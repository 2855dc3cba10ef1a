// Package goldmark builds mdast trees from Markdown source using the
// goldmark CommonMark parser.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

// Parser parses CommonMark into mdast trees. A Parser is safe for concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// New creates a CommonMark parser with no extensions enabled.
func New() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse converts raw Markdown bytes into a FileSnapshot holding the tree.
//
// The content is copied first, so the caller may reuse its buffer; literals
// in the tree may alias the snapshot's copy.
//
// Returns nil and an error if the context is cancelled or the goldmark tree
// holds a node with no mdast equivalent.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := mdast.NewFileSnapshot(path, copyContent(content))

	reader := text.NewReader(snapshot.Content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	root, err := newMapper(snapshot.Content).mapDocument(gmDoc)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", displayPath(path), err)
	}
	snapshot.Root = root

	return snapshot, nil
}

// FileSnapshot is a type alias for mdast.FileSnapshot for convenience.
type FileSnapshot = mdast.FileSnapshot

func displayPath(path string) string {
	if path == "" {
		return "<input>"
	}
	return path
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
