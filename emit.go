package vellum

import "sort"

// emit.go is the render tree emitter. Emission is two-phase by
// necessity: paint instructions (gradient bounds, clip rects, text
// origins) depend on final geometry, so the emitter first submits one
// layout box request per node, receives concrete geometry from the
// external layout engine, and only then walks the tree again producing
// ordered paint instructions.

// PaintOp is one ordered paint instruction for the external
// rasterization stack. Ops arrive in paint order: tree order, with an
// explicit elevation property overriding z-order (stable within one
// elevation).
type PaintOp interface {
	isPaint()
}

// FillOp fills a rounded rectangle.
type FillOp struct {
	Node   NodeID
	Rect   Rect
	Color  Color
	Radius float64
}

// BorderOp strokes a rounded rectangle outline.
type BorderOp struct {
	Node   NodeID
	Rect   Rect
	Color  Color
	Width  float64
	Radius float64
}

// TextOp draws a text run. The engine hands the resolved font, size,
// and color; shaping and glyph placement happen downstream.
type TextOp struct {
	Node   NodeID
	Rect   Rect
	Text   string
	Family string
	Size   float64
	Weight float64
	Color  Color
	Align  TextAlign
}

// ImageOp draws an image by reference. Loading and decoding are the
// host's concern.
type ImageOp struct {
	Node    NodeID
	Rect    Rect
	Ref     string
	Opacity float64
}

func (FillOp) isPaint()   {}
func (BorderOp) isPaint() {}
func (TextOp) isPaint()   {}
func (ImageOp) isPaint()  {}

// Frame is the output of one render pass: per-node geometry plus the
// ordered paint instruction list.
type Frame struct {
	Viewport Size
	Ops      []PaintOp

	geometry map[NodeID]Rect
}

// Geometry returns the emitted rectangle for a node.
func (f *Frame) Geometry(id NodeID) (Rect, bool) {
	r, ok := f.geometry[id]
	return r, ok
}

// emit runs the two-phase layout-then-paint flow for the current tree.
func (e *Engine) emit(viewport Size) (*Frame, error) {
	frame := &Frame{Viewport: viewport, geometry: make(map[NodeID]Rect)}
	root := e.tree.Root()
	if root == NoNode {
		e.paintOrder = nil
		return frame, nil
	}

	// Phase 1: one layout box request per node, depth-first preorder.
	var requests []LayoutRequest
	var ids []NodeID
	e.collectRequests(root, -1, &requests, &ids)

	geometry, err := e.layout.Solve(requests, viewport)
	if err != nil {
		// A rejected solve never fails the frame: everything clamps
		// to zero and painting continues.
		rejected := &LayoutRejectedError{Node: root, Err: err}
		e.log.Error().Err(err).Msg(rejected.Error())
		geometry = make([]Geometry, len(requests))
		for i, req := range requests {
			geometry[i] = Geometry{Node: req.Node}
		}
	}

	for _, g := range geometry {
		n := e.tree.Node(g.Node)
		if n == nil {
			continue
		}
		rect := g.Rect
		if rect.Width < 0 || rect.Height < 0 {
			rejected := &LayoutRejectedError{Node: g.Node}
			e.log.Warn().Int32("node", int32(g.Node)).Float64("width", rect.Width).Float64("height", rect.Height).Msg(rejected.Error())
			rect.Width = max(rect.Width, 0)
			rect.Height = max(rect.Height, 0)
		}
		n.geometry = rect
		n.hasGeometry = true
		frame.geometry[g.Node] = rect
	}

	// Phase 2: paint in tree order, then stable-sort by elevation so
	// tree order still decides within one elevation.
	entries := make([]paintEntry, 0, len(ids))
	for _, id := range ids {
		n := e.tree.Node(id)
		if n == nil || n.placeholder || !n.hasGeometry {
			continue
		}
		entries = append(entries, e.paintNode(n))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].elevation < entries[j].elevation
	})

	e.paintOrder = e.paintOrder[:0]
	for _, entry := range entries {
		frame.Ops = append(frame.Ops, entry.ops...)
		e.paintOrder = append(e.paintOrder, entry.node)
	}
	return frame, nil
}

// collectRequests walks the subtree in preorder, appending one request
// per node. Placeholder nodes request an empty zero-size box so
// siblings lay out as if the subtree were absent.
func (e *Engine) collectRequests(id NodeID, parent int, requests *[]LayoutRequest, ids *[]NodeID) {
	n := e.tree.Node(id)
	if n == nil {
		return
	}
	self := len(*requests)
	*requests = append(*requests, LayoutRequest{Node: id, Parent: parent, Box: e.boxStyle(n)})
	*ids = append(*ids, id)
	for _, child := range n.children {
		e.collectRequests(child, self, requests, ids)
	}
}

// boxStyle projects a node's resolved style onto the layout contract.
func (e *Engine) boxStyle(n *Node) BoxStyle {
	if n.placeholder {
		return BoxStyle{Width: Length{Unit: UnitPx}, Height: Length{Unit: UnitPx}, Shrink: 1}
	}
	rs := n.resolved
	box := BoxStyle{
		Width:     rs.Length(PropWidth),
		Height:    rs.Length(PropHeight),
		MinWidth:  rs.Length(PropMinWidth),
		MinHeight: rs.Length(PropMinHeight),
		MaxWidth:  rs.Length(PropMaxWidth),
		MaxHeight: rs.Length(PropMaxHeight),
		Padding: Edges{
			Top:    rs.Px(PropPaddingTop),
			Right:  rs.Px(PropPaddingRight),
			Bottom: rs.Px(PropPaddingBottom),
			Left:   rs.Px(PropPaddingLeft),
		},
		Margin: Edges{
			Top:    rs.Px(PropMarginTop),
			Right:  rs.Px(PropMarginRight),
			Bottom: rs.Px(PropMarginBottom),
			Left:   rs.Px(PropMarginLeft),
		},
		Direction:      Direction(rs.Enum(PropDirection)),
		JustifyContent: Justify(rs.Enum(PropJustifyContent)),
		AlignItems:     Align(rs.Enum(PropAlignItems)),
		AlignSelf:      Align(rs.Enum(PropAlignSelf)),
		Gap:            rs.Px(PropGap),
		Grow:           rs.Number(PropFlexGrow),
		Shrink:         rs.Number(PropFlexShrink),
	}
	if n.text != "" {
		size := rs.Px(PropFontSize)
		box.Intrinsic = e.measure.Measure(n.text, rs.Font(PropFontFamily), size, rs.Number(PropFontWeight))
		box.Intrinsic.Width += box.Padding.Horizontal()
		box.Intrinsic.Height += box.Padding.Vertical()
	}
	return box
}

type paintEntry struct {
	node      NodeID
	elevation float64
	ops       []PaintOp
}

// paintNode emits the paint instructions for one node: background
// fill, border stroke, then text run or image, all sharing the node's
// opacity.
func (e *Engine) paintNode(n *Node) paintEntry {
	rs := n.resolved
	opacity := rs.Number(PropOpacity)
	radius := rs.Px(PropCornerRadius)
	entry := paintEntry{node: n.id, elevation: rs.Number(PropElevation)}

	if bg := rs.Color(PropBackground); !bg.IsTransparent() {
		entry.ops = append(entry.ops, FillOp{
			Node:   n.id,
			Rect:   n.geometry,
			Color:  bg.ScaleAlpha(opacity),
			Radius: radius,
		})
	}
	if bw := rs.Px(PropBorderWidth); bw > 0 {
		if bc := rs.Color(PropBorderColor); !bc.IsTransparent() {
			entry.ops = append(entry.ops, BorderOp{
				Node:   n.id,
				Rect:   n.geometry,
				Color:  bc.ScaleAlpha(opacity),
				Width:  bw,
				Radius: radius,
			})
		}
	}
	if n.text != "" {
		content := n.geometry.Inset(Edges{
			Top:    rs.Px(PropPaddingTop),
			Right:  rs.Px(PropPaddingRight),
			Bottom: rs.Px(PropPaddingBottom),
			Left:   rs.Px(PropPaddingLeft),
		})
		entry.ops = append(entry.ops, TextOp{
			Node:   n.id,
			Rect:   content,
			Text:   n.text,
			Family: rs.Font(PropFontFamily),
			Size:   rs.Px(PropFontSize),
			Weight: rs.Number(PropFontWeight),
			Color:  rs.Color(PropTextColor).ScaleAlpha(opacity),
			Align:  TextAlign(rs.Enum(PropTextAlign)),
		})
	}
	if n.imageRef != "" {
		entry.ops = append(entry.ops, ImageOp{
			Node:    n.id,
			Rect:    n.geometry,
			Ref:     n.imageRef,
			Opacity: opacity,
		})
	}
	return entry
}
