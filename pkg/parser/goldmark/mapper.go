package goldmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

var mailtoScheme = []byte("mailto:")

// UnsupportedNodeError is returned when the goldmark tree holds a node kind
// the mapper has no mdast equivalent for.
type UnsupportedNodeError struct {
	Kind string
}

func (e *UnsupportedNodeError) Error() string {
	return "unsupported goldmark node: " + e.Kind
}

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) (*mdast.Node, error) {
	doc := mdast.NewDocument()
	if err := m.mapChildren(gmDoc, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// mapChildren maps all children of a goldmark node and appends them to parent.
// goldmark may split one run of prose into several text segments, cutting
// between a backslash and the character it escapes, so adjacent segments are
// joined before escapes and entities are resolved.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) error {
	var run []byte
	flush := func() {
		if len(run) > 0 {
			appendText(parent, unescape(run))
		}
		run = nil
	}

	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			if c.IsRaw() {
				flush()
				appendText(parent, c.Segment.Value(m.content))
			} else {
				run = append(run, c.Segment.Value(m.content)...)
			}
			if brk := lineBreak(c); brk != nil {
				flush()
				mdast.AppendChild(parent, brk)
			}
			continue

		case *ast.String:
			if c.IsRaw() || c.IsCode() {
				flush()
				appendText(parent, c.Value)
			} else {
				run = append(run, c.Value...)
			}
			continue
		}

		flush()
		if err := m.mapNode(child, parent); err != nil {
			return err
		}
	}
	flush()

	return nil
}

// lineBreak returns the break node goldmark flagged after a text segment.
func lineBreak(textNode *ast.Text) *mdast.Node {
	switch {
	case textNode.HardLineBreak():
		return mdast.NewNode(mdast.NodeHardBreak)
	case textNode.SoftLineBreak():
		return mdast.NewNode(mdast.NodeSoftBreak)
	default:
		return nil
	}
}

// mapNode converts a single non-text goldmark node and appends the result
// to parent.
func (m *mapper) mapNode(gmNode ast.Node, parent *mdast.Node) error {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		node = mdast.NewHeading(gmn.Level)

	case *ast.Paragraph, *ast.TextBlock:
		node = mdast.NewNode(mdast.NodeParagraph)

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = mdast.NewNode(mdast.NodeListItem)

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = mdast.NewCodeBlock(nil, m.lines(gmn.Lines()))

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = m.mapHTMLBlock(gmn)

	// Inline-level nodes.
	case *ast.Emphasis:
		if gmn.Level == 2 {
			node = mdast.NewNode(mdast.NodeStrong)
		} else {
			node = mdast.NewNode(mdast.NodeEmphasis)
		}

	case *ast.CodeSpan:
		mdast.AppendChild(parent, mdast.NewCodeSpan(m.codeSpanLiteral(gmn)))
		return nil

	case *ast.Link:
		node = mdast.NewLink(unescape(gmn.Destination), unescape(gmn.Title))

	case *ast.Image:
		node = mdast.NewImage(unescape(gmn.Destination), unescape(gmn.Title))

	case *ast.AutoLink:
		mdast.AppendChild(parent, m.mapAutoLink(gmn))
		return nil

	case *ast.RawHTML:
		mdast.AppendChild(parent, mdast.NewHTMLInline(m.segments(gmn.Segments)))
		return nil

	default:
		return &UnsupportedNodeError{Kind: gmNode.Kind().String()}
	}

	mdast.AppendChild(parent, node)
	if err := m.mapChildren(gmNode, node); err != nil {
		return fmt.Errorf("%s: %w", node.Kind, err)
	}
	return nil
}

// mapList converts a goldmark List to an mdast node.
// goldmark stores the bullet character or the ordered delimiter in Marker.
func (m *mapper) mapList(list *ast.List) *mdast.Node {
	listAttrs := &mdast.ListAttrs{
		Ordered:     list.IsOrdered(),
		StartNumber: list.Start,
		Tight:       list.IsTight,
	}

	if list.IsOrdered() {
		listAttrs.Delimiter = mdast.DelimiterPeriod
		if list.Marker == ')' {
			listAttrs.Delimiter = mdast.DelimiterParen
		}
	} else {
		listAttrs.BulletMarker = string(list.Marker)
	}

	return mdast.NewList(listAttrs)
}

// mapFencedCodeBlock converts a goldmark FencedCodeBlock to an mdast node.
func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) *mdast.Node {
	var info []byte
	if codeBlock.Info != nil {
		info = unescape(codeBlock.Info.Segment.Value(m.content))
	}

	node := mdast.NewCodeBlock(info, m.lines(codeBlock.Lines()))
	node.Block.CodeBlock.Fenced = true
	return node
}

// mapHTMLBlock joins the block lines and, when present, its closing line.
func (m *mapper) mapHTMLBlock(block *ast.HTMLBlock) *mdast.Node {
	literal := m.lines(block.Lines())
	if block.HasClosure() {
		literal = append(literal, block.ClosureLine.Value(m.content)...)
	}
	return mdast.NewHTMLBlock(literal)
}

// codeSpanLiteral joins the raw segments of a code span. goldmark has already
// stripped the padding spaces; line endings inside the span become spaces.
func (m *mapper) codeSpanLiteral(codeSpan *ast.CodeSpan) []byte {
	var literal []byte
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		var value []byte
		switch c := child.(type) {
		case *ast.Text:
			value = c.Segment.Value(m.content)
		case *ast.String:
			value = c.Value
		default:
			continue
		}

		if bytes.HasSuffix(value, []byte("\n")) {
			literal = append(literal, value[:len(value)-1]...)
			literal = append(literal, ' ')
			continue
		}
		literal = append(literal, value...)
	}
	return literal
}

// mapAutoLink converts <url> and <address> into a link whose text is the label.
func (m *mapper) mapAutoLink(al *ast.AutoLink) *mdast.Node {
	label := al.Label(m.content)
	url := al.URL(m.content)

	if al.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), mailtoScheme) {
		url = append(append([]byte(nil), mailtoScheme...), url...)
	}

	node := mdast.NewLink(url, nil)
	node.Inline.Link.ReferenceStyle = mdast.RefStyleAutolink
	mdast.AppendChild(node, mdast.NewText(label))
	return node
}

// lines concatenates the values of block line segments.
func (m *mapper) lines(lines *text.Segments) []byte {
	if lines == nil {
		return nil
	}
	var out []byte
	for i := range lines.Len() {
		seg := lines.At(i)
		out = append(out, seg.Value(m.content)...)
	}
	return out
}

// segments concatenates raw inline segments.
func (m *mapper) segments(segs *text.Segments) []byte {
	return m.lines(segs)
}

// appendText adds literal as a text child of parent, extending the last
// child instead when it is already a text node.
func appendText(parent *mdast.Node, literal []byte) {
	if last := parent.LastChild; last != nil && last.Kind == mdast.NodeText {
		merged := make([]byte, 0, len(last.Inline.Text)+len(literal))
		merged = append(merged, last.Inline.Text...)
		merged = append(merged, literal...)
		last.Inline.Text = merged
		return
	}
	mdast.AppendChild(parent, mdast.NewText(literal))
}

// unescape resolves backslash escapes and entity references. Escaped
// characters are taken literally, so "\&amp;" stays "&amp;".
func unescape(value []byte) []byte {
	if bytes.IndexByte(value, '\\') < 0 && bytes.IndexByte(value, '&') < 0 {
		return value
	}

	out := make([]byte, 0, len(value))
	start := 0
	for i := 0; i < len(value); i++ {
		if value[i] != '\\' || i+1 >= len(value) || !util.IsPunct(value[i+1]) {
			continue
		}
		out = append(out, resolveReferences(value[start:i])...)
		out = append(out, value[i+1])
		i++
		start = i + 1
	}
	return append(out, resolveReferences(value[start:])...)
}

func resolveReferences(value []byte) []byte {
	if bytes.IndexByte(value, '&') < 0 {
		return value
	}
	return util.ResolveEntityNames(util.ResolveNumericReferences(value))
}
