package vellum

import (
	"testing"
)

// stripLayout is a deterministic layout stub for engine tests: nodes
// receive disjoint horizontal strips in request order, sized by their
// px width/height when set. Real flex solving is the layout package's
// concern, not tested here.
type stripLayout struct {
	err error
}

func (s stripLayout) Solve(reqs []LayoutRequest, viewport Size) ([]Geometry, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Geometry, len(reqs))
	y := 0.0
	for i, req := range reqs {
		w := req.Box.Width.Resolve(viewport.Width, viewport.Width)
		h := req.Box.Height.Resolve(viewport.Height, 10)
		out[i] = Geometry{Node: req.Node, Rect: NewRect(0, y, w, h)}
		y += h
	}
	return out, nil
}

func testTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := NewTheme("test", map[TokenName]Value{
		"accent":       ColorValue(RGB(0, 0, 255)),
		"accent-hover": ColorValue(RGB(0, 0, 139)),
		"surface":      ColorValue(RGB(30, 30, 30)),
	})
	if err != nil {
		t.Fatalf("NewTheme() error = %v", err)
	}
	theme.RegisterKind("panel", NewStyleSet(map[Property]Value{
		PropBackground: Token("surface"),
	}))
	theme.RegisterKind("button", NewStyleSet(map[Property]Value{
		PropBackground: Token("accent"),
		PropHeight:     Px(10),
	}))
	theme.RegisterKind("label", StyleSet{})
	return theme
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithTheme(testTheme(t)),
		WithLayoutEngine(stripLayout{}),
	}
	e, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

// renderTestFrame submits the descriptor and renders one frame on a
// fixed viewport, failing the test on frame error.
func renderTestFrame(t *testing.T, e *Engine, root *Descriptor) *Frame {
	t.Helper()
	e.Submit(root)
	frame, err := e.RenderFrame(Size{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	return frame
}
