package vellum

import "fmt"

// ValueKind distinguishes the typed variants a style Value can hold.
type ValueKind uint8

const (
	// KindUnset marks a property as absent from a partial style.
	// Merge treats unset values as fall-through.
	KindUnset ValueKind = iota
	// KindLength is a dimension (pixels, percent, or auto).
	KindLength
	// KindColor is an RGBA color.
	KindColor
	// KindFont is a font family reference.
	KindFont
	// KindEnum is a closed enumeration value (alignment, direction).
	KindEnum
	// KindNumber is a unitless float (flex factors, opacity, elevation).
	KindNumber
	// KindToken is an indirection through the active theme's token table.
	KindToken
)

var valueKindNames = map[ValueKind]string{
	KindUnset:  "unset",
	KindLength: "length",
	KindColor:  "color",
	KindFont:   "font",
	KindEnum:   "enum",
	KindNumber: "number",
	KindToken:  "token",
}

// String returns the kind name.
func (k ValueKind) String() string {
	if n, ok := valueKindNames[k]; ok {
		return n
	}
	return "unknown"
}

// LengthUnit specifies how a Length is interpreted.
type LengthUnit uint8

const (
	UnitAuto    LengthUnit = iota // Size determined by content/flex
	UnitPx                        // Absolute pixels
	UnitPercent                   // Percentage of parent's available space
)

// Length represents a dimension that can be pixels, percentage, or auto.
type Length struct {
	Amount float64
	Unit   LengthUnit
}

// IsAuto returns true if this length should be computed from content/flex.
func (l Length) IsAuto() bool {
	return l.Unit == UnitAuto
}

// Resolve computes the concrete pixel value given available space.
// For UnitAuto, returns the fallback value.
func (l Length) Resolve(available, fallback float64) float64 {
	switch l.Unit {
	case UnitPx:
		return l.Amount
	case UnitPercent:
		return available * l.Amount / 100.0
	default:
		return fallback
	}
}

// TokenName names an entry in a theme's token table.
type TokenName string

// Value is the typed variant for one style property. Exactly one of the
// payload fields is meaningful, selected by Kind. Values are small and
// copied freely; they are never mutated after construction.
type Value struct {
	Kind   ValueKind
	Length Length
	Color  Color
	Font   string
	Enum   int
	Number float64
	Token  TokenName
}

// Px returns a fixed pixel length value.
func Px(px float64) Value {
	return Value{Kind: KindLength, Length: Length{Amount: px, Unit: UnitPx}}
}

// Percent returns a percentage length value (0-100 scale).
func Percent(p float64) Value {
	return Value{Kind: KindLength, Length: Length{Amount: p, Unit: UnitPercent}}
}

// Auto returns a length value computed from content/flex.
func Auto() Value {
	return Value{Kind: KindLength, Length: Length{Unit: UnitAuto}}
}

// ColorValue returns a concrete color value.
func ColorValue(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// FontValue returns a font family reference value.
func FontValue(family string) Value {
	return Value{Kind: KindFont, Font: family}
}

// EnumValue returns a closed enumeration value.
func EnumValue[T ~uint8](v T) Value {
	return Value{Kind: KindEnum, Enum: int(v)}
}

// Number returns a unitless numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// Token returns a value resolved against the active theme's token table
// at style-resolution time.
func Token(name TokenName) Value {
	return Value{Kind: KindToken, Token: name}
}

// IsSet returns true if the value is present (not KindUnset).
func (v Value) IsSet() bool {
	return v.Kind != KindUnset
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case KindUnset:
		return "unset"
	case KindLength:
		switch v.Length.Unit {
		case UnitAuto:
			return "auto"
		case UnitPercent:
			return fmt.Sprintf("%g%%", v.Length.Amount)
		default:
			return fmt.Sprintf("%gpx", v.Length.Amount)
		}
	case KindColor:
		return v.Color.Hex()
	case KindFont:
		return v.Font
	case KindEnum:
		return fmt.Sprintf("enum(%d)", v.Enum)
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindToken:
		return "$" + string(v.Token)
	default:
		return "unknown"
	}
}
