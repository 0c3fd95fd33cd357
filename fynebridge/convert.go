package fynebridge

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/vellum-ui/vellum"
)

// boldWeight is the resolved font weight at which text renders bold.
// Fyne's text style only distinguishes regular from bold.
const boldWeight = 600

// toNRGBA converts an engine color to Fyne's native color type.
func toNRGBA(c vellum.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// paintObject builds the canvas object for one paint operation,
// positioned and sized in viewport pixels.
func paintObject(op vellum.PaintOp) fyne.CanvasObject {
	switch op := op.(type) {
	case vellum.FillOp:
		r := canvas.NewRectangle(toNRGBA(op.Color))
		r.CornerRadius = float32(op.Radius)
		place(r, op.Rect)
		return r
	case vellum.BorderOp:
		r := canvas.NewRectangle(color.Transparent)
		r.StrokeColor = toNRGBA(op.Color)
		r.StrokeWidth = float32(op.Width)
		r.CornerRadius = float32(op.Radius)
		place(r, op.Rect)
		return r
	case vellum.TextOp:
		t := canvas.NewText(op.Text, toNRGBA(op.Color))
		t.TextSize = float32(op.Size)
		t.TextStyle = fyne.TextStyle{Bold: op.Weight >= boldWeight}
		t.Alignment = textAlign(op.Align)
		place(t, op.Rect)
		return t
	case vellum.ImageOp:
		img := canvas.NewImageFromFile(op.Ref)
		img.FillMode = canvas.ImageFillContain
		img.Translucency = 1 - op.Opacity
		place(img, op.Rect)
		return img
	}
	return nil
}

func place(obj fyne.CanvasObject, r vellum.Rect) {
	obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

func textAlign(a vellum.TextAlign) fyne.TextAlign {
	switch a {
	case vellum.TextAlignCenter:
		return fyne.TextAlignCenter
	case vellum.TextAlignRight:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

func pointerButton(b desktop.MouseButton) vellum.PointerButton {
	switch b {
	case desktop.MouseButtonSecondary:
		return vellum.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return vellum.ButtonMiddle
	default:
		return vellum.ButtonPrimary
	}
}

// keyName maps Fyne named keys onto the engine's key vocabulary.
// Unmapped keys pass through as their Fyne name.
func keyName(name fyne.KeyName) string {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return "enter"
	case fyne.KeyEscape:
		return "escape"
	case fyne.KeyTab:
		return "tab"
	case fyne.KeySpace:
		return "space"
	case fyne.KeyBackspace:
		return "backspace"
	case fyne.KeyDelete:
		return "delete"
	case fyne.KeyUp:
		return "up"
	case fyne.KeyDown:
		return "down"
	case fyne.KeyLeft:
		return "left"
	case fyne.KeyRight:
		return "right"
	case fyne.KeyHome:
		return "home"
	case fyne.KeyEnd:
		return "end"
	case fyne.KeyPageUp:
		return "pageup"
	case fyne.KeyPageDown:
		return "pagedown"
	default:
		return string(name)
	}
}
