package vellum

import (
	"testing"
)

func collectIDs(e *Engine) []NodeID {
	var ids []NodeID
	e.tree.Walk(e.tree.Root(), func(n *Node) bool {
		ids = append(ids, n.ID())
		return true
	})
	return ids
}

func TestRebuildExpandsDescriptorTree(t *testing.T) {
	e := newTestEngine(t)
	root := NewDescriptor("panel", WithChildren(
		NewDescriptor("button", WithText("ok")),
		NewDescriptor("label", WithText("hi")),
	))

	renderTestFrame(t, e, root)

	if e.tree.Len() != 3 {
		t.Fatalf("tree Len() = %d, want 3", e.tree.Len())
	}
	rootNode := e.tree.Node(e.tree.Root())
	if rootNode.Kind() != "panel" {
		t.Errorf("root kind = %q, want panel", rootNode.Kind())
	}
	if len(rootNode.Children()) != 2 {
		t.Fatalf("root has %d children, want 2", len(rootNode.Children()))
	}
	if kind := e.tree.Node(rootNode.Children()[0]).Kind(); kind != "button" {
		t.Errorf("first child kind = %q, want button", kind)
	}
}

func TestRebuildUnchangedKeepsIDs(t *testing.T) {
	e := newTestEngine(t)
	build := func() *Descriptor {
		return NewDescriptor("panel", WithChildren(
			NewDescriptor("button", WithText("ok")),
			NewDescriptor("label", WithText("hi")),
		))
	}

	renderTestFrame(t, e, build())
	before := collectIDs(e)
	renderTestFrame(t, e, build())
	after := collectIDs(e)

	if len(before) != len(after) {
		t.Fatalf("node count changed across identical rebuilds: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("node %d changed ID across identical rebuilds: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestRebuildKindChangeDiscardsNode(t *testing.T) {
	e := newTestEngine(t)

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
	)))
	oldChild := e.tree.Node(e.tree.Root()).Children()[0]

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("label"),
	)))
	newChild := e.tree.Node(e.tree.Root()).Children()[0]

	if kind := e.tree.Node(newChild).Kind(); kind != "label" {
		t.Errorf("child kind = %q, want label", kind)
	}
	if oldNode := e.tree.Node(oldChild); oldNode != nil && oldNode.Kind() == "button" {
		t.Error("button node survived a kind change at its position")
	}
}

func TestRebuildKeyMismatchDiscards(t *testing.T) {
	e := newTestEngine(t)

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button", WithKey("a")),
	)))
	first := e.tree.Node(e.tree.Root()).Children()[0]

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button", WithKey("b")),
	)))
	second := e.tree.Node(e.tree.Root()).Children()[0]

	if e.tree.Node(second).Key() != "b" {
		t.Errorf("child key = %q, want b", e.tree.Node(second).Key())
	}
	if first == second {
		t.Error("node reused across differing keys, want discard and fresh alloc")
	}
}

func TestRebuildReleasesTrailingChildren(t *testing.T) {
	e := newTestEngine(t)

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("label"),
		NewDescriptor("label"),
		NewDescriptor("label"),
	)))
	if e.tree.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", e.tree.Len())
	}

	released := false
	trailing := e.tree.Node(e.tree.Root()).Children()[2]
	e.tree.Node(trailing).AddReleaser(func() { released = true })

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("label"),
	)))
	if e.tree.Len() != 2 {
		t.Errorf("Len() after shrink = %d, want 2", e.tree.Len())
	}
	if !released {
		t.Error("release hook did not run for discarded trailing child")
	}
}

func TestRebuildNilRootClearsTree(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("panel"))
	if e.tree.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", e.tree.Len())
	}

	renderTestFrame(t, e, nil)
	if e.tree.Len() != 0 {
		t.Errorf("Len() after nil submit = %d, want 0", e.tree.Len())
	}
	if e.tree.Root() != NoNode {
		t.Errorf("Root() = %v, want NoNode", e.tree.Root())
	}
}

func TestUnknownKindBecomesPlaceholder(t *testing.T) {
	e := newTestEngine(t)

	frame := renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("mystery", WithChildren(
			NewDescriptor("button"),
		)),
		NewDescriptor("button", WithText("ok")),
	)))

	rootNode := e.tree.Node(e.tree.Root())
	if len(rootNode.Children()) != 2 {
		t.Fatalf("root has %d children, want 2", len(rootNode.Children()))
	}

	ph := e.tree.Node(rootNode.Children()[0])
	if !ph.IsPlaceholder() {
		t.Error("unknown kind node IsPlaceholder() = false, want true")
	}
	if len(ph.Children()) != 0 {
		t.Errorf("placeholder kept %d children, want 0", len(ph.Children()))
	}

	// The placeholder never paints but the sibling renders normally.
	sibling := rootNode.Children()[1]
	for _, op := range frame.Ops {
		if fill, ok := op.(FillOp); ok && fill.Node == ph.ID() {
			t.Error("placeholder emitted a fill op")
		}
	}
	found := false
	for _, op := range frame.Ops {
		if fill, ok := op.(FillOp); ok && fill.Node == sibling {
			found = true
		}
	}
	if !found {
		t.Error("sibling of placeholder emitted no fill op")
	}
}

func TestHoverSurvivesRebuild(t *testing.T) {
	e := newTestEngine(t)
	build := func(text string) *Descriptor {
		return NewDescriptor("panel", WithChildren(
			NewDescriptor("button", WithText(text)),
		))
	}

	renderTestFrame(t, e, build("a"))
	buttonID := e.tree.Node(e.tree.Root()).Children()[0]
	rect, _ := e.tree.Node(buttonID).Geometry()
	e.Dispatch(PointerMoveEvent{X: rect.X + 1, Y: rect.Y + 1})

	if !e.tree.Node(buttonID).State().Has(StateHover) {
		t.Fatal("button not hovered after pointer move")
	}

	// A rebuild with changed text keeps the node and its hover flag.
	renderTestFrame(t, e, build("b"))
	n := e.tree.Node(buttonID)
	if n == nil || n.Text() != "b" {
		t.Fatal("button node was not reused across rebuild")
	}
	if !n.State().Has(StateHover) {
		t.Error("hover flag lost across rebuild")
	}
}

func TestDescriptorDrivenStateStamps(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("button"))
	id := e.tree.Root()
	stamp := e.tree.Node(id).dirtyStamp

	// Identical rebuild: no new stamp.
	renderTestFrame(t, e, NewDescriptor("button"))
	if got := e.tree.Node(id).dirtyStamp; got != stamp {
		t.Errorf("dirtyStamp changed on identical rebuild: %d -> %d", stamp, got)
	}

	// Disabled flips base state and stamps the node.
	renderTestFrame(t, e, NewDescriptor("button", WithDisabled()))
	n := e.tree.Node(id)
	if !n.State().Has(StateDisabled) {
		t.Error("StateDisabled not set from descriptor")
	}
	if n.dirtyStamp <= stamp {
		t.Errorf("dirtyStamp = %d, want above %d after disabled flip", n.dirtyStamp, stamp)
	}
}
