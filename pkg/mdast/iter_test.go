package mdast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

type event struct {
	Kind  mdast.NodeKind
	Event mdast.EventType
}

func collectEvents(it *mdast.Iterator, skip func(*mdast.Node) bool) []event {
	var events []event
	for it.Next() {
		events = append(events, event{it.Node().Kind, it.Event()})
		if it.Entering() && skip != nil && skip(it.Node()) {
			it.SkipToExit(it.Node())
		}
	}
	return events
}

func TestIterator_EnterExitOrder(t *testing.T) {
	t.Parallel()

	got := collectEvents(mdast.NewIterator(buildTestTree()), nil)

	want := []event{
		{mdast.NodeDocument, mdast.EventEnter},
		{mdast.NodeHeading, mdast.EventEnter},
		{mdast.NodeText, mdast.EventEnter},
		{mdast.NodeText, mdast.EventExit},
		{mdast.NodeHeading, mdast.EventExit},
		{mdast.NodeParagraph, mdast.EventEnter},
		{mdast.NodeText, mdast.EventEnter},
		{mdast.NodeText, mdast.EventExit},
		{mdast.NodeEmphasis, mdast.EventEnter},
		{mdast.NodeText, mdast.EventEnter},
		{mdast.NodeText, mdast.EventExit},
		{mdast.NodeEmphasis, mdast.EventExit},
		{mdast.NodeParagraph, mdast.EventExit},
		{mdast.NodeDocument, mdast.EventExit},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestIterator_SkipToExit(t *testing.T) {
	t.Parallel()

	got := collectEvents(mdast.NewIterator(buildTestTree()), func(n *mdast.Node) bool {
		return n.Kind == mdast.NodeParagraph
	})

	want := []event{
		{mdast.NodeDocument, mdast.EventEnter},
		{mdast.NodeHeading, mdast.EventEnter},
		{mdast.NodeText, mdast.EventEnter},
		{mdast.NodeText, mdast.EventExit},
		{mdast.NodeHeading, mdast.EventExit},
		{mdast.NodeParagraph, mdast.EventEnter},
		{mdast.NodeParagraph, mdast.EventExit},
		{mdast.NodeDocument, mdast.EventExit},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestIterator_NilRoot(t *testing.T) {
	t.Parallel()

	it := mdast.NewIterator(nil)
	if it.Next() {
		t.Fatal("expected no events for nil root")
	}
	if it.Node() != nil || it.Event() != mdast.EventNone {
		t.Errorf("expected exhausted iterator, got %v/%s", it.Node(), it.Event())
	}
}

func TestIterator_LeafRoot(t *testing.T) {
	t.Parallel()

	got := collectEvents(mdast.NewIterator(mdast.NewText([]byte("x"))), nil)
	want := []event{
		{mdast.NodeText, mdast.EventEnter},
		{mdast.NodeText, mdast.EventExit},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestIterator_SubtreeStaysInside(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()
	heading := doc.FirstChild

	got := collectEvents(mdast.NewIterator(heading), nil)
	if len(got) != 4 {
		t.Fatalf("expected 4 events for heading subtree, got %d: %v", len(got), got)
	}
	if got[len(got)-1] != (event{mdast.NodeHeading, mdast.EventExit}) {
		t.Errorf("expected heading exit last, got %v", got[len(got)-1])
	}
}

func TestEventType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ev   mdast.EventType
		want string
	}{
		{mdast.EventNone, "none"},
		{mdast.EventEnter, "enter"},
		{mdast.EventExit, "exit"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
