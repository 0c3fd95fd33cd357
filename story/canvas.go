package story

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vellum-ui/vellum"
)

// Cell dimensions in engine pixels. The canvas quantizes emitted
// geometry onto the terminal grid at this scale.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cell is one character cell of the canvas.
type cell struct {
	ch rune
	fg vellum.Color
	bg vellum.Color
	// set flags track whether fg/bg were painted, since the zero
	// Color is transparent black.
	fgSet bool
	bgSet bool
}

// Canvas rasterizes a frame's paint instructions onto a grid of
// styled character cells for terminal preview. It is a stand-in for a
// real rasterization stack: fills become colored cells, borders become
// box-drawing runes, text runs land at their layout position.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// NewCanvas creates a canvas of the given terminal dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Viewport returns the engine-pixel viewport this canvas represents.
func (c *Canvas) Viewport() vellum.Size {
	return vellum.Size{
		Width:  float64(c.width) * cellWidth,
		Height: float64(c.height) * cellHeight,
	}
}

// Paint rasterizes a frame's ops in order. Call on a fresh or Reset
// canvas; ops paint over whatever is already there.
func (c *Canvas) Paint(frame *vellum.Frame) {
	for _, op := range frame.Ops {
		switch op := op.(type) {
		case vellum.FillOp:
			c.fill(op.Rect, op.Color)
		case vellum.BorderOp:
			c.border(op.Rect, op.Color)
		case vellum.TextOp:
			c.text(op)
		case vellum.ImageOp:
			c.image(op)
		}
	}
}

// Reset clears every cell.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Render returns the canvas as lipgloss-styled terminal lines.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			ch := cl.ch
			if ch == 0 {
				ch = ' '
			}
			style := lipgloss.NewStyle()
			if cl.fgSet {
				style = style.Foreground(lipgloss.Color(cl.fg.Hex()))
			}
			if cl.bgSet {
				style = style.Background(lipgloss.Color(cl.bg.Hex()))
			}
			b.WriteString(style.Render(string(ch)))
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CellAt returns the rune and colors at a cell, for tests.
func (c *Canvas) CellAt(x, y int) (rune, vellum.Color, vellum.Color) {
	if !c.inBounds(x, y) {
		return 0, vellum.Color{}, vellum.Color{}
	}
	cl := c.cells[y*c.width+x]
	ch := cl.ch
	if ch == 0 {
		ch = ' '
	}
	return ch, cl.fg, cl.bg
}

// PixelToCell maps an engine-pixel coordinate onto the cell grid.
func PixelToCell(x, y float64) (int, int) {
	return int(x / cellWidth), int(y / cellHeight)
}

// CellToPixel maps a cell coordinate to the pixel at its center, used
// to synthesize pointer events from terminal mouse positions.
func CellToPixel(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * cellWidth, (float64(cy) + 0.5) * cellHeight
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// cellRect quantizes a pixel rect to cell bounds (x0..x1, y0..y1
// exclusive).
func cellRect(r vellum.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = PixelToCell(r.X, r.Y)
	x1 = int((r.X + r.Width + cellWidth - 1) / cellWidth)
	y1 = int((r.Y + r.Height + cellHeight - 1) / cellHeight)
	return x0, y0, x1, y1
}

func (c *Canvas) fill(r vellum.Rect, col vellum.Color) {
	if col.IsTransparent() {
		return
	}
	x0, y0, x1, y1 := cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.inBounds(x, y) {
				continue
			}
			cl := &c.cells[y*c.width+x]
			cl.bg = col
			cl.bgSet = true
			cl.ch = 0
		}
	}
}

// border draws box-drawing runes along the rect edges.
func (c *Canvas) border(r vellum.Rect, col vellum.Color) {
	if col.IsTransparent() {
		return
	}
	x0, y0, x1, y1 := cellRect(r)
	x1--
	y1--
	if x1 < x0 || y1 < y0 {
		return
	}
	put := func(x, y int, ch rune) {
		if !c.inBounds(x, y) {
			return
		}
		cl := &c.cells[y*c.width+x]
		cl.ch = ch
		cl.fg = col
		cl.fgSet = true
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')
}

func (c *Canvas) text(op vellum.TextOp) {
	x0, y0, x1, _ := cellRect(op.Rect)
	width := x1 - x0
	runes := []rune(op.Text)
	if width <= 0 {
		return
	}
	if len(runes) > width {
		runes = runes[:width]
	}
	start := x0
	switch op.Align {
	case vellum.TextAlignCenter:
		start = x0 + (width-len(runes))/2
	case vellum.TextAlignRight:
		start = x1 - len(runes)
	}
	for i, ch := range runes {
		x := start + i
		if !c.inBounds(x, y0) {
			continue
		}
		cl := &c.cells[y0*c.width+x]
		cl.ch = ch
		cl.fg = op.Color
		cl.fgSet = true
	}
}

// image shades the region and labels it with the reference, since the
// canvas has no decoder.
func (c *Canvas) image(op vellum.ImageOp) {
	x0, y0, x1, y1 := cellRect(op.Rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.inBounds(x, y) {
				continue
			}
			cl := &c.cells[y*c.width+x]
			cl.ch = '▒'
		}
	}
	c.text(vellum.TextOp{
		Rect:  op.Rect,
		Text:  op.Ref,
		Align: vellum.TextAlignCenter,
		Color: vellum.RGB(0x88, 0x88, 0x88),
	})
}
