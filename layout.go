package vellum

// layout.go defines the contract the engine presents to an external
// layout engine: geometry primitives, the per-node box request, and the
// LayoutEngine interface. The engine never solves layout itself; the
// layout subpackage provides a reference flexbox implementation.

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
	AlignAuto                 // Inherit the parent's AlignItems (AlignSelf only)
)

// TextAlign specifies how text is aligned within its content area.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Point represents an x/y coordinate in pixels.
type Point struct {
	X, Y float64
}

// Size represents a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect represents a rectangle with position and dimensions in pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns a new Rect shrunk by the given edges.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// IsEmpty returns true if the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Edges represents spacing on four sides in pixels.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of left and right edges.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom edges.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// BoxStyle is the layout-relevant slice of a node's resolved style,
// handed to the external layout engine as part of a LayoutRequest.
type BoxStyle struct {
	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	Padding Edges
	Margin  Edges

	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align // AlignAuto inherits the parent's AlignItems
	Gap            float64

	Grow   float64
	Shrink float64

	// Intrinsic is the content-based size hint (measured text, image
	// dimensions). Zero for pure containers.
	Intrinsic Size
}

// LayoutRequest asks the layout engine to place one node. Requests are
// emitted in depth-first preorder; Parent indexes into the same request
// slice (-1 for the root), so the engine can rebuild the tree shape
// without knowing anything about nodes.
type LayoutRequest struct {
	Node   NodeID
	Parent int
	Box    BoxStyle
}

// Geometry is the layout engine's answer for one node.
type Geometry struct {
	Node NodeID
	Rect Rect
}

// LayoutEngine solves layout for a whole tree of box requests in one
// synchronous call. Implementations that are internally asynchronous
// must still present this batched request/response boundary: submit all
// boxes, await a single geometry result.
//
// Geometry must be returned for every requested node. Positions are in
// absolute pixel coordinates relative to the viewport origin.
type LayoutEngine interface {
	Solve(requests []LayoutRequest, viewport Size) ([]Geometry, error)
}
