package vellum

import (
	"testing"
)

func TestNewRequiresThemeAndLayout(t *testing.T) {
	if _, err := New(WithLayoutEngine(stripLayout{})); err == nil {
		t.Error("New() without theme error = nil, want error")
	}
	if _, err := New(WithTheme(testTheme(t))); err == nil {
		t.Error("New() without layout engine error = nil, want error")
	}
	e, err := New(WithTheme(testTheme(t)), WithLayoutEngine(stripLayout{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if e.ID() == "" {
		t.Error("ID() = empty, want generated identifier")
	}
}

func TestSubmitLatestWins(t *testing.T) {
	e := newTestEngine(t)

	e.Submit(NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
		NewDescriptor("button"),
	)))
	e.Submit(NewDescriptor("panel", WithChildren(
		NewDescriptor("label"),
	)))

	if _, err := e.RenderFrame(Size{Width: 100, Height: 100}); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}

	rootNode := e.tree.Node(e.tree.Root())
	if got := len(rootNode.Children()); got != 1 {
		t.Fatalf("children = %d, want 1 (only the latest submission builds)", got)
	}
	if kind := e.tree.Node(rootNode.Children()[0]).Kind(); kind != "label" {
		t.Errorf("child kind = %q, want label", kind)
	}
}

func TestHoverChangesResolvedColor(t *testing.T) {
	e := newTestEngine(t)
	rules := NewRuleSet()
	rules.Add(Selector{Kind: "button", States: StateHover}, NewStyleSet(map[Property]Value{
		PropBackground: Token("accent-hover"),
	}))
	e.SetRules(rules)

	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
	)))
	id := e.tree.Node(e.tree.Root()).Children()[0]

	style, _ := e.ResolveNode(id)
	if got := style.Color(PropBackground); got != RGB(0, 0, 255) {
		t.Fatalf("background = %+v, want accent", got)
	}

	r, _ := e.tree.Node(id).Geometry()
	e.Dispatch(PointerMoveEvent{X: r.X + 1, Y: r.Y + 1})
	hovered, _ := e.ResolveNode(id)
	if got := hovered.Color(PropBackground); got != RGB(0, 0, 139) {
		t.Errorf("hovered background = %+v, want accent-hover", got)
	}
	if hovered.Generation() <= style.Generation() {
		t.Error("hover did not advance the node's style generation")
	}

	e.Dispatch(PointerMoveEvent{X: -1, Y: -1})
	reverted, _ := e.ResolveNode(id)
	if got := reverted.Color(PropBackground); got != RGB(0, 0, 255) {
		t.Errorf("background after hover end = %+v, want accent", got)
	}
}

func TestSetRulesInvalidatesAll(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("button"))
	id := e.tree.Root()
	before, _ := e.ResolveNode(id)

	rules := NewRuleSet()
	rules.Add(Selector{Kind: "button"}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(9, 9, 9)),
	}))
	e.SetRules(rules)

	after, _ := e.ResolveNode(id)
	if after.Generation() <= before.Generation() {
		t.Error("SetRules did not invalidate the node's resolved style")
	}
	if got := after.Color(PropBackground); got != RGB(9, 9, 9) {
		t.Errorf("background after SetRules = %+v, want rule value", got)
	}
}

func TestSetThemeTokenGranularInvalidation(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"), // consumes accent
		NewDescriptor("label"),  // consumes nothing
	)))
	children := e.tree.Node(e.tree.Root()).Children()
	btn, lbl := children[0], children[1]

	btnBefore, _ := e.ResolveNode(btn)
	lblBefore, _ := e.ResolveNode(lbl)

	// Same kind table, only the accent token changes.
	next, err := NewTheme("test", map[TokenName]Value{
		"accent":       ColorValue(RGB(255, 0, 0)),
		"accent-hover": ColorValue(RGB(0, 0, 139)),
		"surface":      ColorValue(RGB(30, 30, 30)),
	})
	if err != nil {
		t.Fatalf("NewTheme() error = %v", err)
	}
	next.RegisterKind("panel", NewStyleSet(map[Property]Value{
		PropBackground: Token("surface"),
	}))
	next.RegisterKind("button", NewStyleSet(map[Property]Value{
		PropBackground: Token("accent"),
		PropHeight:     Px(10),
	}))
	next.RegisterKind("label", StyleSet{})

	if err := e.SetTheme(next); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	btnAfter, _ := e.ResolveNode(btn)
	lblAfter, _ := e.ResolveNode(lbl)

	if btnAfter.Generation() <= btnBefore.Generation() {
		t.Error("node consuming a changed token was not invalidated")
	}
	if got := btnAfter.Color(PropBackground); got != RGB(255, 0, 0) {
		t.Errorf("button background = %+v, want new accent", got)
	}
	if lblAfter.Generation() != lblBefore.Generation() {
		t.Error("node with no changed token dependency was re-resolved")
	}
}

func TestSetThemeKindChangeInvalidatesAll(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("label"))
	id := e.tree.Root()
	before, _ := e.ResolveNode(id)

	next := testTheme(t)
	next.RegisterKind("label", NewStyleSet(map[Property]Value{
		PropTextColor: ColorValue(RGB(200, 200, 200)),
	}))
	if err := e.SetTheme(next); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	after, _ := e.ResolveNode(id)
	if after.Generation() <= before.Generation() {
		t.Error("kind default change did not invalidate the node")
	}
	if got := after.Color(PropTextColor); got != RGB(200, 200, 200) {
		t.Errorf("text color = %+v, want new kind default", got)
	}
}

func TestSetThemeNil(t *testing.T) {
	e := newTestEngine(t)
	if err := e.SetTheme(nil); err == nil {
		t.Error("SetTheme(nil) error = nil, want error")
	}
}

func TestResolveNodeUnknownID(t *testing.T) {
	e := newTestEngine(t)
	if _, ok := e.ResolveNode(42); ok {
		t.Error("ResolveNode(42) ok = true, want false for unknown node")
	}
}

func TestUnchangedFrameKeepsGenerations(t *testing.T) {
	e := newTestEngine(t)
	renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
	)))
	id := e.tree.Node(e.tree.Root()).Children()[0]
	before, _ := e.ResolveNode(id)

	// Rendering again without changes reuses cached resolutions.
	if _, err := e.RenderFrame(Size{Width: 100, Height: 100}); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	after, _ := e.ResolveNode(id)
	if after.Generation() != before.Generation() {
		t.Errorf("generation changed across no-op frame: %d -> %d", before.Generation(), after.Generation())
	}
}
