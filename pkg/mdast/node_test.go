package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

func TestNode_IsBlock(t *testing.T) {
	t.Parallel()

	blockKinds := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
		mdast.NodeList,
		mdast.NodeListItem,
		mdast.NodeBlockquote,
		mdast.NodeCodeBlock,
		mdast.NodeThematicBreak,
		mdast.NodeHTMLBlock,
	}

	for _, kind := range blockKinds {
		node := &mdast.Node{Kind: kind}
		if !node.IsBlock() {
			t.Errorf("expected %s to be block", kind)
		}
	}
}

func TestNode_InlineKindsAreNotBlocks(t *testing.T) {
	t.Parallel()

	inlineKinds := []mdast.NodeKind{
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeStrong,
		mdast.NodeCodeSpan,
		mdast.NodeLink,
		mdast.NodeImage,
		mdast.NodeSoftBreak,
		mdast.NodeHardBreak,
		mdast.NodeHTMLInline,
	}

	for _, kind := range inlineKinds {
		node := &mdast.Node{Kind: kind}
		if node.IsBlock() {
			t.Errorf("expected %s to not be block", kind)
		}
	}
}

func TestNode_ChildCount(t *testing.T) {
	t.Parallel()

	parent := mdast.NewDocument()

	if parent.HasChildren() || parent.ChildCount() != 0 {
		t.Errorf("expected 0 children, got %d", parent.ChildCount())
	}

	mdast.AppendChild(parent, mdast.NewNode(mdast.NodeParagraph))
	if !parent.HasChildren() || parent.ChildCount() != 1 {
		t.Errorf("expected 1 child, got %d", parent.ChildCount())
	}

	mdast.AppendChildren(parent, mdast.NewNode(mdast.NodeParagraph), mdast.NewNode(mdast.NodeParagraph))
	if parent.ChildCount() != 3 {
		t.Errorf("expected 3 children, got %d", parent.ChildCount())
	}
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	child1 := mdast.NewNode(mdast.NodeParagraph)
	child2 := mdast.NewHeading(2)
	child3 := mdast.NewCodeBlock(nil, []byte("x\n"))
	parent := mdast.AppendChildren(mdast.NewDocument(), child1, child2, child3)

	children := parent.Children()

	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}

	if children[0] != child1 || children[1] != child2 || children[2] != child3 {
		t.Error("children not in expected order")
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     mdast.NodeKind
		expected string
	}{
		{mdast.NodeDocument, "Document"},
		{mdast.NodeParagraph, "Paragraph"},
		{mdast.NodeHeading, "Heading"},
		{mdast.NodeList, "List"},
		{mdast.NodeText, "Text"},
		{mdast.NodeEmphasis, "Emphasis"},
		{mdast.NodeImage, "Image"},
		{mdast.NodeKind(999), "NodeKind(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}

func TestNodeKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, mdast.NodeDocument.Valid())
	assert.True(t, mdast.NodeImage.Valid())
	assert.False(t, mdast.NodeKind(mdast.NodeImage+1).Valid())
}

func TestNode_Literal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *mdast.Node
		want string
	}{
		{"text", mdast.NewText([]byte("hello")), "hello"},
		{"code span", mdast.NewCodeSpan([]byte("x := 1")), "x := 1"},
		{"inline html", mdast.NewHTMLInline([]byte("<br>")), "<br>"},
		{"code block", mdast.NewCodeBlock([]byte("go"), []byte("fmt.Println()\n")), "fmt.Println()\n"},
		{"html block", mdast.NewHTMLBlock([]byte("<div>\n")), "<div>\n"},
		{"paragraph", mdast.NewNode(mdast.NodeParagraph), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.node.Literal().String())
		})
	}
}

func TestNode_ContainingBlock(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()
	para := doc.LastChild
	emph := para.LastChild
	emphText := emph.FirstChild

	assert.Same(t, para, emphText.ContainingBlock())
	assert.Same(t, para, emph.ContainingBlock())
	assert.Same(t, para, para.ContainingBlock())
	assert.Nil(t, mdast.NewText([]byte("orphan")).ContainingBlock())
}

func TestNode_ListAndLinkAccessors(t *testing.T) {
	t.Parallel()

	list := mdast.NewList(&mdast.ListAttrs{Ordered: true, StartNumber: 3, Delimiter: mdast.DelimiterParen})
	if assert.NotNil(t, list.List()) {
		assert.True(t, list.List().Ordered)
		assert.Equal(t, 3, list.List().StartNumber)
	}
	assert.Nil(t, mdast.NewNode(mdast.NodeParagraph).List())

	link := mdast.NewLink([]byte("https://example.com"), []byte("Example"))
	if assert.NotNil(t, link.Link()) {
		assert.Equal(t, "https://example.com", link.Link().Destination.String())
		assert.Equal(t, "Example", link.Link().Title.String())
	}
	assert.Nil(t, mdast.NewText(nil).Link())

	var nilNode *mdast.Node
	assert.Nil(t, nilNode.List())
	assert.Nil(t, nilNode.Link())
}
