// Package mdast provides the Markdown AST shared by the parser adapter and
// the CommonMark renderer:
//   - Node: a tagged tree of block and inline nodes with literal Chunks
//   - Walk and Iterator: depth-first traversal with enter/exit events
//   - FileSnapshot: a parsed file with its source and tree
package mdast

// FileSnapshot is a parsed Markdown file: its raw content and the tree built
// from it. Chunks in the tree may alias Content, so Content must not change.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Root is the AST root node (Document).
	Root *Node
}

// NewFileSnapshot creates a FileSnapshot with no tree yet.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
	}
}
