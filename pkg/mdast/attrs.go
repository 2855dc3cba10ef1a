package mdast

import "bytes"

// Chunk is a read-only view over source bytes. Chunks are never mutated
// after the tree is built; they usually alias the parsed document content.
type Chunk []byte

// Len returns the length of the chunk in bytes.
func (c Chunk) Len() int {
	return len(c)
}

// String returns the chunk content as a string.
func (c Chunk) String() string {
	return string(c)
}

// Equal reports whether c and other hold the same bytes.
func (c Chunk) Equal(other Chunk) bool {
	return bytes.Equal(c, other)
}

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs

	// Literal is the raw content of a NodeHTMLBlock.
	Literal Chunk
}

// ListDelimiter is the character following the number of an ordered list item.
type ListDelimiter string

const (
	// DelimiterPeriod renders ordered markers as "1.".
	DelimiterPeriod ListDelimiter = "."

	// DelimiterParen renders ordered markers as "1)".
	DelimiterParen ListDelimiter = ")"
)

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// BulletMarker is the bullet character used in the source ("-", "+", "*").
	BulletMarker string

	// StartNumber is the starting number for ordered lists.
	StartNumber int

	// Delimiter is the delimiter for ordered lists.
	Delimiter ListDelimiter

	// Tight is true if this is a tight list (no blank lines between items).
	Tight bool
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// Info is the info string (language identifier, etc.).
	Info Chunk

	// Literal is the code content, including the final newline.
	Literal Chunk

	// Fenced records whether the source used a fence. Renderers may ignore it.
	Fenced bool
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the literal for NodeText, NodeCodeSpan and NodeHTMLInline.
	Text Chunk

	// Link holds link attributes for NodeLink and NodeImage.
	Link *LinkAttrs
}

// ReferenceStyle indicates the syntax style of a link or image reference.
type ReferenceStyle uint8

const (
	// RefStyleInline represents inline links: [text](url) or ![alt](url).
	RefStyleInline ReferenceStyle = iota

	// RefStyleAutolink represents autolinks: <https://example.com>.
	RefStyleAutolink
)

// String returns a human-readable name for the reference style.
func (s ReferenceStyle) String() string {
	switch s {
	case RefStyleInline:
		return "inline"
	case RefStyleAutolink:
		return "autolink"
	default:
		return "unknown"
	}
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL.
	Destination Chunk

	// Title is the optional link title.
	Title Chunk

	// ReferenceStyle records the syntax the parser saw.
	ReferenceStyle ReferenceStyle
}

// NewBlockAttrs creates a new BlockAttrs with default values.
func NewBlockAttrs() *BlockAttrs {
	return &BlockAttrs{}
}

// NewInlineAttrs creates a new InlineAttrs with default values.
func NewInlineAttrs() *InlineAttrs {
	return &InlineAttrs{}
}

// WithHeadingLevel sets the heading level and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithHeadingLevel(level int) *BlockAttrs {
	a.HeadingLevel = level
	return a
}

// WithList sets list attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithList(attrs *ListAttrs) *BlockAttrs {
	a.List = attrs
	return a
}

// WithCodeBlock sets code block attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithCodeBlock(attrs *CodeBlockAttrs) *BlockAttrs {
	a.CodeBlock = attrs
	return a
}

// WithLiteral sets the raw block content and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithLiteral(literal []byte) *BlockAttrs {
	a.Literal = literal
	return a
}

// WithText sets the text content and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithText(text []byte) *InlineAttrs {
	a.Text = text
	return a
}

// WithLink sets link attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithLink(attrs *LinkAttrs) *InlineAttrs {
	a.Link = attrs
	return a
}
