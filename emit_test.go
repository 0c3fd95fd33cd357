package vellum

import (
	"errors"
	"testing"
)

func TestEmitEmptyTree(t *testing.T) {
	e := newTestEngine(t)
	frame, err := e.RenderFrame(Size{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	if len(frame.Ops) != 0 {
		t.Errorf("empty tree emitted %d ops, want 0", len(frame.Ops))
	}
}

func TestEmitGeometryAndFill(t *testing.T) {
	e := newTestEngine(t)
	frame := renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
	)))

	rootID := e.tree.Root()
	btnID := e.tree.Node(rootID).Children()[0]

	rect, ok := frame.Geometry(btnID)
	if !ok {
		t.Fatal("frame has no geometry for the button")
	}
	if rect.Height != 10 {
		t.Errorf("button height = %v, want 10 from kind default", rect.Height)
	}

	var fills []FillOp
	for _, op := range frame.Ops {
		if fill, ok := op.(FillOp); ok {
			fills = append(fills, fill)
		}
	}
	if len(fills) != 2 {
		t.Fatalf("frame emitted %d fills, want 2 (panel + button)", len(fills))
	}
	found := false
	for _, fill := range fills {
		if fill.Node == btnID && fill.Color == RGB(0, 0, 255) {
			found = true
		}
	}
	if !found {
		t.Error("button fill with accent color not emitted")
	}
}

func TestEmitTextInsetByPadding(t *testing.T) {
	theme := testTheme(t)
	theme.RegisterKind("padded", NewStyleSet(map[Property]Value{
		PropPaddingTop:  Px(4),
		PropPaddingLeft: Px(6),
		PropTextColor:   ColorValue(RGB(255, 255, 255)),
	}))
	e, err := New(WithTheme(theme), WithLayoutEngine(stripLayout{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frame := renderTestFrame(t, e, NewDescriptor("padded", WithText("hi")))
	id := e.tree.Root()
	rect, _ := frame.Geometry(id)

	var text *TextOp
	for _, op := range frame.Ops {
		if op, ok := op.(TextOp); ok {
			text = &op
		}
	}
	if text == nil {
		t.Fatal("no text op emitted")
	}
	if text.Rect.X != rect.X+6 || text.Rect.Y != rect.Y+4 {
		t.Errorf("text rect origin = (%v, %v), want inset by padding (%v, %v)",
			text.Rect.X, text.Rect.Y, rect.X+6, rect.Y+4)
	}
	if text.Text != "hi" {
		t.Errorf("text content = %q, want hi", text.Text)
	}
	if text.Color != RGB(255, 255, 255) {
		t.Errorf("text color = %+v, want resolved text color", text.Color)
	}
}

func TestEmitElevationOrdersOps(t *testing.T) {
	theme := testTheme(t)
	theme.RegisterKind("raised", NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(1, 1, 1)),
		PropElevation:  Number(2),
	}))
	theme.RegisterKind("flat", NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(2, 2, 2)),
	}))
	e, err := New(WithTheme(theme), WithLayoutEngine(stripLayout{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Raised comes first in tree order but must paint last.
	frame := renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("raised"),
		NewDescriptor("flat"),
	)))

	var colors []Color
	for _, op := range frame.Ops {
		if fill, ok := op.(FillOp); ok {
			colors = append(colors, fill.Color)
		}
	}
	if len(colors) != 3 {
		t.Fatalf("emitted %d fills, want 3", len(colors))
	}
	if colors[len(colors)-1] != RGB(1, 1, 1) {
		t.Errorf("last fill = %+v, want the elevated node painted on top", colors[len(colors)-1])
	}
}

func TestEmitOpacityScalesPaint(t *testing.T) {
	theme := testTheme(t)
	theme.RegisterKind("ghosted", NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(10, 20, 30)),
		PropOpacity:    Number(0.5),
	}))
	e, err := New(WithTheme(theme), WithLayoutEngine(stripLayout{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frame := renderTestFrame(t, e, NewDescriptor("ghosted"))
	var fill *FillOp
	for _, op := range frame.Ops {
		if op, ok := op.(FillOp); ok {
			fill = &op
		}
	}
	if fill == nil {
		t.Fatal("no fill emitted")
	}
	if fill.Color.A >= 255 {
		t.Errorf("fill alpha = %d, want scaled below opaque", fill.Color.A)
	}
}

func TestEmitLayoutRejectionRecovers(t *testing.T) {
	e, err := New(
		WithTheme(testTheme(t)),
		WithLayoutEngine(stripLayout{err: errors.New("unsatisfiable constraints")}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frame := renderTestFrame(t, e, NewDescriptor("panel", WithChildren(
		NewDescriptor("button"),
	)))

	// The frame still renders; every node clamps to a zero rect.
	rect, ok := frame.Geometry(e.tree.Root())
	if !ok {
		t.Fatal("rejected layout dropped node geometry entirely")
	}
	if rect.Width != 0 || rect.Height != 0 {
		t.Errorf("rect = %+v, want zero size after rejection", rect)
	}
}

type negativeLayout struct{}

func (negativeLayout) Solve(reqs []LayoutRequest, viewport Size) ([]Geometry, error) {
	out := make([]Geometry, len(reqs))
	for i, req := range reqs {
		out[i] = Geometry{Node: req.Node, Rect: NewRect(0, 0, -5, -7)}
	}
	return out, nil
}

func TestEmitClampsNegativeGeometry(t *testing.T) {
	e, err := New(WithTheme(testTheme(t)), WithLayoutEngine(negativeLayout{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frame := renderTestFrame(t, e, NewDescriptor("button"))
	rect, ok := frame.Geometry(e.tree.Root())
	if !ok {
		t.Fatal("no geometry for root")
	}
	if rect.Width != 0 || rect.Height != 0 {
		t.Errorf("rect = %+v, want negative sizes clamped to zero", rect)
	}
}

func TestFixedMeasurerScalesWithText(t *testing.T) {
	m := NewFixedMeasurer()
	short := m.Measure("hi", "sans", 14, 400)
	long := m.Measure("hello world", "sans", 14, 400)
	if long.Width <= short.Width {
		t.Errorf("Measure(long).Width = %v, want above short %v", long.Width, short.Width)
	}
	if short.Height <= 0 {
		t.Errorf("Measure height = %v, want positive", short.Height)
	}
	if got := m.Measure("", "sans", 14, 400); got.Width != 0 {
		t.Errorf("Measure(empty).Width = %v, want 0", got.Width)
	}
}
