package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-ui/vellum"
)

func TestCanvasViewport(t *testing.T) {
	c := NewCanvas(10, 4)
	got := c.Viewport()
	assert.Equal(t, vellum.Size{Width: 80, Height: 64}, got)
}

func TestCellPixelRoundTrip(t *testing.T) {
	px, py := CellToPixel(3, 2)
	cx, cy := PixelToCell(px, py)
	assert.Equal(t, 3, cx)
	assert.Equal(t, 2, cy)
}

func TestCanvasPaintFill(t *testing.T) {
	c := NewCanvas(4, 2)
	frame := &vellum.Frame{
		Viewport: c.Viewport(),
		Ops: []vellum.PaintOp{
			vellum.FillOp{Rect: vellum.NewRect(0, 0, 16, 16), Color: vellum.RGB(255, 0, 0)},
		},
	}
	c.Paint(frame)

	_, _, bg := c.CellAt(0, 0)
	assert.Equal(t, vellum.RGB(255, 0, 0), bg)
	_, _, bg = c.CellAt(1, 0)
	assert.Equal(t, vellum.RGB(255, 0, 0), bg)
	// Outside the fill rect nothing was painted.
	_, _, bg = c.CellAt(3, 1)
	assert.True(t, bg.IsTransparent())
}

func TestCanvasPaintText(t *testing.T) {
	c := NewCanvas(8, 2)
	frame := &vellum.Frame{
		Viewport: c.Viewport(),
		Ops: []vellum.PaintOp{
			vellum.TextOp{
				Rect:  vellum.NewRect(0, 0, 64, 16),
				Text:  "hi",
				Color: vellum.RGB(255, 255, 255),
			},
		},
	}
	c.Paint(frame)

	ch, fg, _ := c.CellAt(0, 0)
	assert.Equal(t, 'h', ch)
	assert.Equal(t, vellum.RGB(255, 255, 255), fg)
	ch, _, _ = c.CellAt(1, 0)
	assert.Equal(t, 'i', ch)
}

func TestCanvasTextTruncates(t *testing.T) {
	c := NewCanvas(4, 1)
	frame := &vellum.Frame{
		Viewport: c.Viewport(),
		Ops: []vellum.PaintOp{
			vellum.TextOp{
				Rect:  vellum.NewRect(0, 0, 16, 16),
				Text:  "overlong",
				Color: vellum.RGB(255, 255, 255),
			},
		},
	}
	c.Paint(frame)

	// Text clips to its rect, not the canvas.
	ch, _, _ := c.CellAt(2, 0)
	assert.Equal(t, ' ', ch)
}

func TestCanvasPaintBorder(t *testing.T) {
	c := NewCanvas(4, 3)
	frame := &vellum.Frame{
		Viewport: c.Viewport(),
		Ops: []vellum.PaintOp{
			vellum.BorderOp{
				Rect:  vellum.NewRect(0, 0, 32, 48),
				Color: vellum.RGB(100, 100, 100),
				Width: 1,
			},
		},
	}
	c.Paint(frame)

	ch, _, _ := c.CellAt(0, 0)
	assert.Equal(t, '┌', ch)
	ch, _, _ = c.CellAt(3, 0)
	assert.Equal(t, '┐', ch)
	ch, _, _ = c.CellAt(0, 2)
	assert.Equal(t, '└', ch)
	ch, _, _ = c.CellAt(3, 2)
	assert.Equal(t, '┘', ch)
	ch, _, _ = c.CellAt(1, 0)
	assert.Equal(t, '─', ch)
	ch, _, _ = c.CellAt(0, 1)
	assert.Equal(t, '│', ch)
}

func TestCanvasReset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Paint(&vellum.Frame{Ops: []vellum.PaintOp{
		vellum.FillOp{Rect: vellum.NewRect(0, 0, 16, 16), Color: vellum.RGB(1, 2, 3)},
	}})
	c.Reset()

	_, _, bg := c.CellAt(0, 0)
	assert.True(t, bg.IsTransparent(), "Reset left painted cells behind")
}

func TestCanvasRenderShape(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
}

func TestCanvasOutOfBoundsPaint(t *testing.T) {
	c := NewCanvas(2, 2)
	// Ops reaching outside the grid must not panic.
	c.Paint(&vellum.Frame{Ops: []vellum.PaintOp{
		vellum.FillOp{Rect: vellum.NewRect(-50, -50, 500, 500), Color: vellum.RGB(9, 9, 9)},
		vellum.TextOp{Rect: vellum.NewRect(1000, 1000, 50, 16), Text: "far", Color: vellum.RGB(1, 1, 1)},
	}})
	_, _, bg := c.CellAt(1, 1)
	assert.Equal(t, vellum.RGB(9, 9, 9), bg)
}

func TestCanvasZeroSize(t *testing.T) {
	c := NewCanvas(0, 0)
	assert.Equal(t, vellum.Size{}, c.Viewport())
	c.Paint(&vellum.Frame{Ops: []vellum.PaintOp{
		vellum.FillOp{Rect: vellum.NewRect(0, 0, 10, 10), Color: vellum.RGB(1, 1, 1)},
	}})
	assert.Equal(t, "", c.Render())
}
