package vellum

import "unicode/utf8"

// TextMeasurer supplies intrinsic text dimensions for layout box
// requests. Real hosts back this with their shaping stack; the engine
// only needs a size hint, never glyph positions.
type TextMeasurer interface {
	Measure(text, family string, size, weight float64) Size
}

// fixedMeasurer approximates text size with a fixed advance per rune.
// Good enough for tests and the story harness; hosts with a shaping
// stack should install their own measurer.
type fixedMeasurer struct {
	// advance is the glyph width as a fraction of font size.
	advance float64
	// leading is the line height as a multiple of font size.
	leading float64
}

// NewFixedMeasurer returns the default fixed-advance text measurer.
func NewFixedMeasurer() TextMeasurer {
	return &fixedMeasurer{advance: 0.6, leading: 1.3}
}

func (m *fixedMeasurer) Measure(text, family string, size, weight float64) Size {
	if text == "" {
		return Size{}
	}
	runes := float64(utf8.RuneCountInString(text))
	return Size{
		Width:  runes * size * m.advance,
		Height: size * m.leading,
	}
}
