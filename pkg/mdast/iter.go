package mdast

// EventType identifies which side of a node an Iterator is on.
type EventType uint8

const (
	// EventNone means the iterator has not started or is exhausted.
	EventNone EventType = iota

	// EventEnter is yielded before a node's descendants.
	EventEnter

	// EventExit is yielded after a node's descendants.
	EventExit
)

// String returns "enter", "exit" or "none".
func (e EventType) String() string {
	switch e {
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	default:
		return "none"
	}
}

// WalkStatus tells a traversal driver how to continue after a node's enter event.
type WalkStatus int

const (
	// WalkContinue visits the node's descendants.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren jumps straight to the node's exit event.
	WalkSkipChildren
)

// Iterator is a depth-first, single-use cursor over a tree. Every node yields
// an enter event followed, after all of its descendants, by an exit event.
// The tree must not be modified while an Iterator is in use.
//
//	it := mdast.NewIterator(root)
//	for it.Next() {
//		node, ev := it.Node(), it.Event()
//		...
//	}
type Iterator struct {
	root *Node

	cur   *Node
	curEv EventType

	next   *Node
	nextEv EventType
}

// NewIterator returns an Iterator positioned before root's enter event.
// A nil root yields nothing.
func NewIterator(root *Node) *Iterator {
	it := &Iterator{root: root}
	if root != nil {
		it.next = root
		it.nextEv = EventEnter
	}
	return it
}

// Next advances to the next event and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.nextEv == EventNone {
		it.cur, it.curEv = nil, EventNone
		return false
	}

	it.cur, it.curEv = it.next, it.nextEv
	it.next, it.nextEv = it.successor(it.cur, it.curEv)
	return true
}

// Node returns the node of the current event.
func (it *Iterator) Node() *Node {
	return it.cur
}

// Event returns the current event type.
func (it *Iterator) Event() EventType {
	return it.curEv
}

// Entering reports whether the current event is an enter event.
func (it *Iterator) Entering() bool {
	return it.curEv == EventEnter
}

// SkipToExit makes the next event the exit event of node, bypassing every
// event of its descendants. node is normally the node just entered.
func (it *Iterator) SkipToExit(node *Node) {
	if node == nil {
		return
	}
	it.next = node
	it.nextEv = EventExit
}

func (it *Iterator) successor(node *Node, ev EventType) (*Node, EventType) {
	if ev == EventEnter {
		if node.FirstChild != nil {
			return node.FirstChild, EventEnter
		}
		return node, EventExit
	}

	if node == it.root {
		return nil, EventNone
	}
	if node.Next != nil {
		return node.Next, EventEnter
	}
	if node.Parent != nil {
		return node.Parent, EventExit
	}
	return nil, EventNone
}
