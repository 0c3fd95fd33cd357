package layout

import (
	"fmt"

	"github.com/vellum-ui/vellum"
)

// Engine solves flexbox layout for vellum box requests. It is
// stateless and safe to share across vellum engines.
type Engine struct{}

// NewEngine returns a flexbox layout engine.
func NewEngine() *Engine {
	return &Engine{}
}

var _ vellum.LayoutEngine = (*Engine)(nil)

// node is the solver's working tree, rebuilt per Solve call from the
// flat request slice.
type node struct {
	id       vellum.NodeID
	box      vellum.BoxStyle
	children []*node

	// rect is the computed border box in absolute pixels.
	rect vellum.Rect
}

// Solve rebuilds the request tree, runs the flex algorithm, and
// returns one geometry per request. It errors only on malformed
// request structure (bad parent index, multiple roots); unsatisfiable
// constraints never error, they clamp.
func (e *Engine) Solve(requests []vellum.LayoutRequest, viewport vellum.Size) ([]vellum.Geometry, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	nodes := make([]*node, len(requests))
	var root *node
	for i, req := range requests {
		nodes[i] = &node{id: req.Node, box: req.Box}
		switch {
		case req.Parent == -1:
			if root != nil {
				return nil, fmt.Errorf("layout: multiple roots (request %d)", i)
			}
			root = nodes[i]
		case req.Parent >= 0 && req.Parent < i:
			parent := nodes[req.Parent]
			parent.children = append(parent.children, nodes[i])
		default:
			return nil, fmt.Errorf("layout: request %d has invalid parent %d", i, req.Parent)
		}
	}
	if root == nil {
		return nil, fmt.Errorf("layout: no root request")
	}

	width := root.box.Width.Resolve(viewport.Width, viewport.Width)
	height := root.box.Height.Resolve(viewport.Height, viewport.Height)
	calculateNode(root, vellum.NewRect(0, 0, width, height))

	geometry := make([]vellum.Geometry, len(nodes))
	for i, n := range nodes {
		geometry[i] = vellum.Geometry{Node: n.id, Rect: n.rect}
	}
	return geometry, nil
}

// calculateNode computes the layout for a single node within the
// available space. The available rect is the border-box space
// allocated by the parent, after the parent applied this node's
// margin.
func calculateNode(n *node, available vellum.Rect) {
	width := clamp(available.Width,
		n.box.MinWidth.Resolve(available.Width, 0),
		resolveMax(n.box.MaxWidth, available.Width))
	height := clamp(available.Height,
		n.box.MinHeight.Resolve(available.Height, 0),
		resolveMax(n.box.MaxHeight, available.Height))
	width = max(width, 0)
	height = max(height, 0)

	n.rect = vellum.Rect{X: available.X, Y: available.Y, Width: width, Height: height}

	if len(n.children) > 0 {
		layoutChildren(n, n.rect.Inset(n.box.Padding))
	}
}

// flexItem holds intermediate calculation state for a child. It is
// stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	baseSize  float64
	mainSize  float64
	crossSize float64
	mainPos   float64
	crossPos  float64
}

// layoutChildren arranges the children of a node within the given
// content rect. This is the core flexbox pass: base sizes, free-space
// distribution by grow/shrink, min/max clamping, justify positioning,
// then cross-axis alignment.
func layoutChildren(n *node, contentRect vellum.Rect) {
	isRow := n.box.Direction == vellum.Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	items := make([]flexItem, len(n.children))
	totalBase := 0.0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range n.children {
		item := &items[i]

		var mainMargin float64
		var mainLength vellum.Length
		var intrinsicMain float64
		if isRow {
			mainMargin = child.box.Margin.Horizontal()
			mainLength = child.box.Width
			intrinsicMain = child.box.Intrinsic.Width
		} else {
			mainMargin = child.box.Margin.Vertical()
			mainLength = child.box.Height
			intrinsicMain = child.box.Intrinsic.Height
		}

		// Auto-sized children start from their intrinsic content size.
		item.baseSize = mainLength.Resolve(mainSize, intrinsicMain) + mainMargin

		totalBase += item.baseSize
		totalGrow += child.box.Grow
		totalShrink += child.box.Shrink
	}

	totalGap := n.box.Gap * float64(max(0, len(n.children)-1))
	freeSpace := mainSize - totalBase - totalGap

	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i, child := range n.children {
			items[i].mainSize = items[i].baseSize
			if child.box.Grow > 0 {
				items[i].mainSize += freeSpace * child.box.Grow / totalGrow
			}
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i, child := range n.children {
			items[i].mainSize = items[i].baseSize
			if child.box.Shrink > 0 {
				items[i].mainSize = max(0, items[i].baseSize-deficit*child.box.Shrink/totalShrink)
			}
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
		freeSpace = max(freeSpace, 0)
	}

	// Min/max constraints on the main axis, then recompute the free
	// space the justify pass distributes.
	for i, child := range n.children {
		var minMain, maxMain float64
		if isRow {
			minMain = child.box.MinWidth.Resolve(mainSize, 0)
			maxMain = resolveMax(child.box.MaxWidth, mainSize)
		} else {
			minMain = child.box.MinHeight.Resolve(mainSize, 0)
			maxMain = resolveMax(child.box.MaxHeight, mainSize)
		}
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
	}
	totalUsed := 0.0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	offset := justifyOffset(n.box.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(n.box.JustifyContent, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + n.box.Gap + spacing
	}

	// Cross-axis sizing and alignment.
	for i, child := range n.children {
		align := n.box.AlignItems
		if child.box.AlignSelf != vellum.AlignAuto {
			align = child.box.AlignSelf
		}

		var crossLength vellum.Length
		var crossMargin, intrinsicCross float64
		if isRow {
			crossLength = child.box.Height
			crossMargin = child.box.Margin.Vertical()
			intrinsicCross = child.box.Intrinsic.Height
		} else {
			crossLength = child.box.Width
			crossMargin = child.box.Margin.Horizontal()
			intrinsicCross = child.box.Intrinsic.Width
		}

		availableCross := crossSize - crossMargin
		if align == vellum.AlignStretch && crossLength.IsAuto() {
			items[i].crossSize = crossSize
			items[i].crossPos = 0
		} else {
			contentCross := crossLength.Resolve(availableCross, intrinsicCross)
			if crossLength.IsAuto() && intrinsicCross == 0 {
				contentCross = availableCross
			}
			items[i].crossSize = contentCross + crossMargin
			items[i].crossPos = alignOffset(align, crossSize, items[i].crossSize)
		}
	}

	// Convert to rects and recurse: shrink each child's slot by its
	// margin to get the border box the child lays out within.
	for i, child := range n.children {
		var slot vellum.Rect
		if isRow {
			slot = vellum.Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = vellum.Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}
		calculateNode(child, slot.Inset(child.box.Margin))
	}
}

// justifyOffset returns the initial main-axis offset for the justify
// mode and free space.
func justifyOffset(justify vellum.Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case vellum.JustifyEnd:
		return freeSpace
	case vellum.JustifyCenter:
		return freeSpace / 2
	case vellum.JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case vellum.JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default:
		return 0
	}
}

// justifySpacing returns extra spacing between children for the
// justify mode and free space.
func justifySpacing(justify vellum.Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}
	switch justify {
	case vellum.JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case vellum.JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case vellum.JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for a child.
func alignOffset(align vellum.Align, crossSize, itemSize float64) float64 {
	switch align {
	case vellum.AlignEnd:
		return crossSize - itemSize
	case vellum.AlignCenter:
		return (crossSize - itemSize) / 2
	default:
		return 0
	}
}

// resolveMax resolves a max constraint, treating auto as unconstrained
// within the available space.
func resolveMax(l vellum.Length, available float64) float64 {
	if l.IsAuto() {
		return available
	}
	return l.Resolve(available, available)
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal
// wins (matches CSS).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
