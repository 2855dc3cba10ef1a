package commonmark

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

const (
	blockquotePrefix   = "> "
	bulletMarker       = "* "
	indentedCodePrefix = "    "
	thematicBreak      = "-----"
	minFenceLength     = 3
)

// renderNode emits one traversal event. It returns WalkSkipChildren when the
// node's descendants must not be rendered.
func renderNode(s *renderState, node *mdast.Node, entering bool) mdast.WalkStatus {
	s.updateTightness(node, entering)

	switch node.Kind {
	case mdast.NodeDocument:
		if !entering {
			s.finishLine()
		}

	case mdast.NodeBlockquote:
		if entering {
			s.marker(blockquotePrefix)
			s.pushPrefix(blockquotePrefix)
		} else {
			s.popPrefix(len(blockquotePrefix))
			s.blankLine()
		}

	case mdast.NodeList:
		if !entering {
			renderListEnd(s, node)
		}

	case mdast.NodeListItem:
		renderListItem(s, node, entering)

	case mdast.NodeHeading:
		renderHeading(s, node, entering)

	case mdast.NodeCodeBlock:
		if entering {
			renderCodeBlock(s, node)
		}

	case mdast.NodeHTMLBlock:
		if entering {
			s.blankLine()
			s.out(node.Literal(), false, escLiteral)
			s.blankLine()
		}

	case mdast.NodeThematicBreak:
		if entering {
			s.blankLine()
			s.lit(thematicBreak, false)
			s.blankLine()
		}

	case mdast.NodeParagraph:
		if !entering {
			s.blankLine()
		}

	case mdast.NodeText:
		if entering {
			s.out(node.Literal(), true, escNormal)
		}

	case mdast.NodeHardBreak:
		if entering {
			// A heading holds one line.
			if s.noWrap {
				s.lit(" ", false)
				break
			}
			if !s.hardBreaks {
				s.lit("\\", false)
			}
			s.cr()
		}

	case mdast.NodeSoftBreak:
		if entering {
			if s.width == 0 && !s.noWrap {
				s.cr()
			} else {
				s.lit(" ", true)
			}
		}

	case mdast.NodeCodeSpan:
		if entering {
			renderCodeSpan(s, node.Literal())
		}

	case mdast.NodeHTMLInline:
		if entering {
			s.out(node.Literal(), false, escLiteral)
		}

	case mdast.NodeStrong:
		s.lit("**", false)

	case mdast.NodeEmphasis:
		s.lit(emphasisDelimiter(node), false)

	case mdast.NodeLink, mdast.NodeImage:
		return renderLink(s, node, entering)

	default:
		s.fail(&InternalConsistencyError{Kind: node.Kind})
	}

	return mdast.WalkContinue
}

// updateTightness sets inTightListItem from the nearest block around node.
// The first item of a list keeps the previous value so that a paragraph
// before a tight list is still followed by a blank line.
func (s *renderState) updateTightness(node *mdast.Node, entering bool) {
	if entering && node.Kind == mdast.NodeListItem && node.Prev == nil {
		return
	}

	block := node.ContainingBlock()
	s.inTightListItem = isTightItem(block) || (block != nil && isTightItem(block.Parent))
}

func isTightItem(node *mdast.Node) bool {
	if node == nil || node.Kind != mdast.NodeListItem {
		return false
	}
	list := node.Parent.List()
	return list != nil && list.Tight
}

// renderListEnd separates a list from a directly following list or code
// block with two blank lines, so the two are not read as one block.
func renderListEnd(s *renderState, list *mdast.Node) {
	next := list.Next
	if next == nil || (next.Kind != mdast.NodeCodeBlock && next.Kind != mdast.NodeList) {
		return
	}
	s.lit("\n", false)
	s.needCR = 0
}

func renderListItem(s *renderState, item *mdast.Node, entering bool) {
	marker, ok := listMarker(item)
	if !ok {
		s.fail(&InternalConsistencyError{Kind: item.Kind, Reason: "item outside a list"})
		return
	}

	if entering {
		s.marker(marker)
		s.pushPrefix(strings.Repeat(" ", len(marker)))
		s.afterItemMarker = true
		return
	}

	s.afterItemMarker = false
	s.popPrefix(len(marker))
	s.cr()
}

// listMarker returns the marker that opens item. Ordered markers are padded
// to at least four columns: "1.  " through "9.  ", then "10. ".
func listMarker(item *mdast.Node) (string, bool) {
	list := item.Parent.List()
	if list == nil {
		return "", false
	}
	if !list.Ordered {
		return bulletMarker, true
	}

	number := list.StartNumber
	for sib := item.Prev; sib != nil; sib = sib.Prev {
		number++
	}

	delim := string(mdast.DelimiterPeriod)
	if list.Delimiter == mdast.DelimiterParen {
		delim = string(mdast.DelimiterParen)
	}

	pad := " "
	if number < 10 {
		pad = "  "
	}
	return strconv.Itoa(number) + delim + pad, true
}

func renderHeading(s *renderState, node *mdast.Node, entering bool) {
	if !entering {
		s.noWrap = false
		s.blankLine()
		return
	}

	if node.Block == nil || node.Block.HeadingLevel < 1 || node.Block.HeadingLevel > 6 {
		s.fail(&InternalConsistencyError{Kind: node.Kind, Reason: "heading level outside 1-6"})
		return
	}
	s.lit(strings.Repeat("#", node.Block.HeadingLevel)+" ", false)
	s.noWrap = true
}

func renderCodeBlock(s *renderState, node *mdast.Node) {
	if node.Block == nil || node.Block.CodeBlock == nil {
		s.fail(&InternalConsistencyError{Kind: node.Kind, Reason: "missing code block attributes"})
		return
	}
	info := node.Block.CodeBlock.Info
	code := node.Block.CodeBlock.Literal

	s.blankLine()

	if useIndentedCode(node, info, code) {
		s.lit(indentedCodePrefix, false)
		s.pushPrefix(indentedCodePrefix)
		s.out(code, false, escLiteral)
		s.popPrefix(len(indentedCodePrefix))
	} else {
		fence := strings.Repeat("`", max(minFenceLength, longestBacktickRun(code)+1))
		s.lit(fence, false)
		s.lit(" ", false)
		s.out(info, false, escLiteral)
		s.cr()
		s.out(code, false, escLiteral)
		s.cr()
		s.lit(fence, false)
	}

	s.blankLine()
}

// useIndentedCode reports whether a code block can be written in indented
// form: it has no info string, does not start with whitespace or end with a
// blank line, and is not the first block of a list item.
func useIndentedCode(node *mdast.Node, info, code []byte) bool {
	if len(info) > 0 || len(code) <= 2 {
		return false
	}
	if isSpace(rune(code[0])) {
		return false
	}
	if isSpace(rune(code[len(code)-1])) && isSpace(rune(code[len(code)-2])) {
		return false
	}
	return node.Prev != nil || node.Parent == nil || node.Parent.Kind != mdast.NodeListItem
}

// renderCodeSpan writes an inline code span fenced by the shortest backtick
// run that does not occur in code.
func renderCodeSpan(s *renderState, code []byte) {
	fence := strings.Repeat("`", shortestUnusedBacktickRun(code))

	s.lit(fence, false)
	if len(code) == 0 || code[0] == '`' {
		s.lit(" ", false)
	}
	s.out(code, true, escLiteral)
	if len(code) == 0 || code[len(code)-1] == '`' {
		s.lit(" ", false)
	}
	s.lit(fence, false)
}

// emphasisDelimiter picks "_" for an emphasis that is the only child of
// another emphasis, since "**x**" would read as strong.
func emphasisDelimiter(node *mdast.Node) string {
	if node.Parent != nil && node.Parent.Kind == mdast.NodeEmphasis &&
		node.Prev == nil && node.Next == nil {
		return "_"
	}
	return "*"
}

func renderLink(s *renderState, node *mdast.Node, entering bool) mdast.WalkStatus {
	link := node.Link()
	if link == nil {
		s.fail(&InternalConsistencyError{Kind: node.Kind, Reason: "missing link attributes"})
		return mdast.WalkContinue
	}

	if isAutolink(node, link) {
		if !entering {
			return mdast.WalkContinue
		}
		s.lit("<", false)
		s.out(bytes.TrimPrefix(link.Destination, mailtoPrefix), false, escLiteral)
		s.lit(">", false)
		return mdast.WalkSkipChildren
	}

	if entering {
		if node.Kind == mdast.NodeImage {
			s.lit("![", false)
		} else {
			s.lit("[", false)
		}
		return mdast.WalkContinue
	}

	s.lit("](", false)
	s.out(link.Destination, false, escURL)
	if len(link.Title) > 0 {
		s.lit(" \"", true)
		s.out(link.Title, false, escTitle)
		s.lit("\"", false)
	}
	s.lit(")", false)

	return mdast.WalkContinue
}
