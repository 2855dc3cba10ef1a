package mdast

import "strconv"

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
// The set is closed: renderers treat any other value as a defect in the
// code that built the tree.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeBlockquote
	NodeList
	NodeListItem
	NodeHeading
	NodeCodeBlock
	NodeHTMLBlock
	NodeThematicBreak
	NodeParagraph

	// Inline-level nodes.
	NodeText
	NodeSoftBreak
	NodeHardBreak
	NodeCodeSpan
	NodeHTMLInline
	NodeEmphasis
	NodeStrong
	NodeLink
	NodeImage
)

//nolint:gochecknoglobals // Read-only lookup table.
var nodeKindNames = [...]string{
	NodeDocument:      "Document",
	NodeBlockquote:    "Blockquote",
	NodeList:          "List",
	NodeListItem:      "ListItem",
	NodeHeading:       "Heading",
	NodeCodeBlock:     "CodeBlock",
	NodeHTMLBlock:     "HTMLBlock",
	NodeThematicBreak: "ThematicBreak",
	NodeParagraph:     "Paragraph",
	NodeText:          "Text",
	NodeSoftBreak:     "SoftBreak",
	NodeHardBreak:     "HardBreak",
	NodeCodeSpan:      "CodeSpan",
	NodeHTMLInline:    "HTMLInline",
	NodeEmphasis:      "Emphasis",
	NodeStrong:        "Strong",
	NodeLink:          "Link",
	NodeImage:         "Image",
}

// String returns the kind name, or "NodeKind(n)" for values outside the set.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared node kinds.
func (k NodeKind) Valid() bool {
	return int(k) < len(nodeKindNames)
}

// Node represents a single node in the Markdown AST.
// Nodes form a tree structure with parent/child/sibling relationships.
// A parent owns its children; Parent, Prev and Next are plain back references.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Literal returns the literal content carried by the node: text for text,
// code span and inline HTML nodes, the body for code and HTML blocks.
// It returns nil for nodes without literal content.
func (n *Node) Literal() Chunk {
	switch {
	case n.Inline != nil:
		return n.Inline.Text
	case n.Block != nil && n.Block.CodeBlock != nil:
		return n.Block.CodeBlock.Literal
	case n.Block != nil:
		return n.Block.Literal
	default:
		return nil
	}
}

// ContainingBlock returns n if it is a block node, otherwise the nearest
// block-level ancestor. It returns nil for a detached inline node.
func (n *Node) ContainingBlock() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.IsBlock() {
			return cur
		}
	}
	return nil
}

// List returns the list attributes of a NodeList, or nil.
func (n *Node) List() *ListAttrs {
	if n == nil || n.Kind != NodeList || n.Block == nil {
		return nil
	}
	return n.Block.List
}

// Link returns the link attributes of a NodeLink or NodeImage, or nil.
func (n *Node) Link() *LinkAttrs {
	if n == nil || n.Inline == nil {
		return nil
	}
	return n.Inline.Link
}
