package mdast

// WalkFunc is called for each node visited by Walk.
type WalkFunc func(n *Node) error

// Walk visits root and its descendants in document order, calling fn once
// per node on entry. The first non-nil error from fn stops the walk and is
// returned.
func Walk(root *Node, fn WalkFunc) error {
	for it := NewIterator(root); it.Next(); {
		if !it.Entering() {
			continue
		}
		if err := fn(it.Node()); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns the nodes under root, root included, for which match
// reports true, in document order.
func FindAll(root *Node, match func(n *Node) bool) []*Node {
	var found []*Node
	for it := NewIterator(root); it.Next(); {
		if it.Entering() && match(it.Node()) {
			found = append(found, it.Node())
		}
	}
	return found
}

// FindByKind returns all nodes of the given kind.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool { return n.Kind == kind })
}
