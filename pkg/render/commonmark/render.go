// Package commonmark serializes an mdast tree back into normalized
// CommonMark text.
//
// The output uses one spelling for each construct: "*" bullets, "1." or
// "1)" ordered markers padded to four columns, ATX headings, "-----" rules,
// the shortest safe backtick fences and "<url>" autolinks where the link
// text equals its destination. Prose is escaped only where a character
// would otherwise be read as markup, and is re-wrapped to Options.Width.
//
// Render is a pure function of the tree and options: it performs no I/O
// and keeps no state between calls.
package commonmark

import "github.com/yaklabco/gomdfmt/pkg/mdast"

// Render writes root as CommonMark. The result always ends with a newline.
//
// Render fails with a *DecodeError when a literal is not valid UTF-8 and
// opts.InvalidUTF8 is DecodeStrict, and with an *InternalConsistencyError
// when the tree holds a node it cannot emit. No partial output is returned
// on error. The tree is not modified.
func Render(root *mdast.Node, opts Options) ([]byte, error) {
	if root == nil {
		return nil, &InternalConsistencyError{Kind: mdast.NodeDocument, Reason: "nil root"}
	}

	state := newRenderState(opts)

	it := mdast.NewIterator(root)
	for it.Next() {
		node, entering := it.Node(), it.Entering()
		state.node = node

		if renderNode(state, node, entering) == mdast.WalkSkipChildren && entering {
			it.SkipToExit(node)
		}
		if state.err != nil {
			return nil, state.err
		}
	}

	state.finishLine()
	return state.buf, nil
}

// RenderString is a convenience wrapper around Render.
func RenderString(root *mdast.Node, opts Options) (string, error) {
	out, err := Render(root, opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
