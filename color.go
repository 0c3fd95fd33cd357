package vellum

import (
	"errors"
	"fmt"
	"strings"
)

// Color is a 32-bit RGBA color with straight (non-premultiplied) alpha.
// Zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque Color from red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA returns a Color from red, green, blue, and alpha components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RGB", "#RRGGBB", and "#RRGGBBAA".
func HexColor(hex string) (Color, error) {
	raw := strings.TrimPrefix(hex, "#")

	switch len(raw) {
	case 3:
		r, err := parseHexNibble(raw[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(raw[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(raw[2])
		if err != nil {
			return Color{}, err
		}
		// Expand nibble to byte: 0xF -> 0xFF
		return RGB(r<<4|r, g<<4|g, b<<4|b), nil
	case 6, 8:
		var parts [4]uint8
		parts[3] = 0xFF
		for i := 0; i < len(raw)/2; i++ {
			v, err := parseHexByte(raw[2*i : 2*i+2])
			if err != nil {
				return Color{}, err
			}
			parts[i] = v
		}
		return RGBA(parts[0], parts[1], parts[2], parts[3]), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB, #RRGGBB, or #RRGGBBAA", hex)
	}
}

// MustHexColor parses a hex color string and panics on failure.
// Intended for compile-time-constant palettes.
func MustHexColor(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// IsTransparent returns true if the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ScaleAlpha multiplies the color's alpha by factor, clamped to [0, 1].
// Used to apply an opacity property to paint instructions.
func (c Color) ScaleAlpha(factor float64) Color {
	if factor <= 0 {
		c.A = 0
		return c
	}
	if factor >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*factor + 0.5)
	return c
}

// Hex returns the color formatted as "#RRGGBB" or "#RRGGBBAA" when
// alpha is not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
