package mdast

// NewNode creates a new node of the specified kind.
// The node has no parent or children.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// NewText creates a text node holding literal.
func NewText(literal []byte) *Node {
	node := NewNode(NodeText)
	node.Inline = NewInlineAttrs().WithText(literal)
	return node
}

// NewCodeSpan creates an inline code node holding literal.
func NewCodeSpan(literal []byte) *Node {
	node := NewNode(NodeCodeSpan)
	node.Inline = NewInlineAttrs().WithText(literal)
	return node
}

// NewHTMLInline creates an inline raw HTML node.
func NewHTMLInline(literal []byte) *Node {
	node := NewNode(NodeHTMLInline)
	node.Inline = NewInlineAttrs().WithText(literal)
	return node
}

// NewHeading creates a heading node of the given level.
func NewHeading(level int) *Node {
	node := NewNode(NodeHeading)
	node.Block = NewBlockAttrs().WithHeadingLevel(level)
	return node
}

// NewList creates a list node. A nil attrs yields a loose bullet list.
func NewList(attrs *ListAttrs) *Node {
	if attrs == nil {
		attrs = &ListAttrs{}
	}
	node := NewNode(NodeList)
	node.Block = NewBlockAttrs().WithList(attrs)
	return node
}

// NewCodeBlock creates a code block node with the given info string and body.
func NewCodeBlock(info, literal []byte) *Node {
	node := NewNode(NodeCodeBlock)
	node.Block = NewBlockAttrs().WithCodeBlock(&CodeBlockAttrs{
		Info:    info,
		Literal: literal,
		Fenced:  len(info) > 0,
	})
	return node
}

// NewHTMLBlock creates a raw HTML block node.
func NewHTMLBlock(literal []byte) *Node {
	node := NewNode(NodeHTMLBlock)
	node.Block = NewBlockAttrs().WithLiteral(literal)
	return node
}

// NewLink creates a link node with the given destination and title.
func NewLink(destination, title []byte) *Node {
	return newLinkLike(NodeLink, destination, title)
}

// NewImage creates an image node with the given destination and title.
func NewImage(destination, title []byte) *Node {
	return newLinkLike(NodeImage, destination, title)
}

func newLinkLike(kind NodeKind, destination, title []byte) *Node {
	node := NewNode(kind)
	node.Inline = NewInlineAttrs().WithLink(&LinkAttrs{
		Destination: destination,
		Title:       title,
	})
	return node
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		removeChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// AppendChildren appends each child to parent in order and returns parent.
func AppendChildren(parent *Node, children ...*Node) *Node {
	for _, child := range children {
		AppendChild(parent, child)
	}
	return parent
}

// removeChild unlinks child from parent.
func removeChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}
