package vellum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// themefile.go loads themes and rule overlays from YAML. Loading is a
// construction-time operation: any malformed token table, unknown
// property, or unparsable value is a hard failure surfaced to the host
// before a frame renders.

// themeFile is the YAML shape of a theme document.
type themeFile struct {
	Name   string                       `yaml:"name" validate:"required"`
	Tokens map[string]string            `yaml:"tokens" validate:"required,min=1,dive,required"`
	Kinds  map[string]map[string]string `yaml:"kinds"`
	Rules  []ruleEntry                  `yaml:"rules"`
}

type ruleEntry struct {
	Kind     string            `yaml:"kind" validate:"required"`
	Variants []string          `yaml:"variants"`
	States   []string          `yaml:"states" validate:"dive,oneof=hover active focused disabled checked"`
	Style    map[string]string `yaml:"style" validate:"required,min=1"`
}

// LoadTheme parses a YAML theme document into a Theme and its rule
// overlay. The document declares a token table, per-kind default
// overrides, and style rules:
//
//	name: dark
//	tokens:
//	  accent: "#89B4FA"
//	  pad-md: 12px
//	kinds:
//	  button:
//	    padding-left: $pad-md
//	rules:
//	  - kind: button
//	    variants: [primary]
//	    states: [hover]
//	    style:
//	      background: $accent
func LoadTheme(data []byte) (*Theme, *RuleSet, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, nil, fmt.Errorf("parsing theme: %w", err)
	}
	if err := validator.New().Struct(tf); err != nil {
		return nil, nil, fmt.Errorf("validating theme %q: %w", tf.Name, err)
	}

	tokens := make(map[TokenName]Value, len(tf.Tokens))
	for name, raw := range tf.Tokens {
		v, err := parseTokenScalar(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("theme %q: token %q: %w", tf.Name, name, err)
		}
		tokens[TokenName(name)] = v
	}
	theme, err := NewTheme(tf.Name, tokens)
	if err != nil {
		return nil, nil, err
	}

	for kind, props := range tf.Kinds {
		style, err := parseStyleMap(props)
		if err != nil {
			return nil, nil, fmt.Errorf("theme %q: kind %q: %w", tf.Name, kind, err)
		}
		theme.RegisterKind(kind, style)
	}

	rules := NewRuleSet()
	for i, re := range tf.Rules {
		style, err := parseStyleMap(re.Style)
		if err != nil {
			return nil, nil, fmt.Errorf("theme %q: rule %d (%s): %w", tf.Name, i, re.Kind, err)
		}
		states, err := parseStates(re.States)
		if err != nil {
			return nil, nil, fmt.Errorf("theme %q: rule %d (%s): %w", tf.Name, i, re.Kind, err)
		}
		rules.Add(Selector{Kind: re.Kind, Variants: re.Variants, States: states}, style)
	}
	return theme, rules, nil
}

// parseStyleMap converts property-name/value-string pairs into a
// StyleSet, rejecting unknown properties and unparsable values.
func parseStyleMap(props map[string]string) (StyleSet, error) {
	var style StyleSet
	for name, raw := range props {
		prop, ok := PropertyByName(name)
		if !ok {
			return StyleSet{}, fmt.Errorf("unknown property %q", name)
		}
		v, err := parsePropScalar(prop, raw)
		if err != nil {
			return StyleSet{}, fmt.Errorf("property %q: %w", name, err)
		}
		style.Set(prop, v)
	}
	return style, nil
}

func parseStates(names []string) (StateFlags, error) {
	var flags StateFlags
	for _, name := range names {
		switch name {
		case "hover":
			flags |= StateHover
		case "active":
			flags |= StateActive
		case "focused":
			flags |= StateFocused
		case "disabled":
			flags |= StateDisabled
		case "checked":
			flags |= StateChecked
		default:
			return 0, fmt.Errorf("unknown state %q", name)
		}
	}
	return flags, nil
}

// parseTokenScalar parses a token table value. Token values must be
// concrete: "$ref" indirection is rejected here.
func parseTokenScalar(raw string) (Value, error) {
	if strings.HasPrefix(raw, "$") {
		return Value{}, fmt.Errorf("token values must be concrete, got reference %q", raw)
	}
	if strings.HasPrefix(raw, "#") {
		c, err := HexColor(raw)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	}
	if family, ok := strings.CutPrefix(raw, "font:"); ok {
		return FontValue(strings.TrimSpace(family)), nil
	}
	if v, err := parseLengthScalar(raw); err == nil {
		return v, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n), nil
	}
	return Value{}, fmt.Errorf("unparsable token value %q", raw)
}

// parsePropScalar parses a style value string for a specific property,
// using the property's expected kind to disambiguate.
func parsePropScalar(prop Property, raw string) (Value, error) {
	if name, ok := strings.CutPrefix(raw, "$"); ok {
		return Token(TokenName(name)), nil
	}
	switch propKind(prop) {
	case KindLength:
		return parseLengthScalar(raw)
	case KindColor:
		c, err := HexColor(raw)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("expected number, got %q", raw)
		}
		return Number(n), nil
	case KindFont:
		return FontValue(raw), nil
	case KindEnum:
		return parseEnumScalar(prop, raw)
	default:
		return Value{}, fmt.Errorf("property %s cannot be set from a theme file", prop)
	}
}

func parseLengthScalar(raw string) (Value, error) {
	if raw == "auto" {
		return Auto(), nil
	}
	if s, ok := strings.CutSuffix(raw, "px"); ok {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("expected length, got %q", raw)
		}
		return Px(n), nil
	}
	if s, ok := strings.CutSuffix(raw, "%"); ok {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("expected length, got %q", raw)
		}
		return Percent(n), nil
	}
	return Value{}, fmt.Errorf("expected length (Npx, N%%, auto), got %q", raw)
}

func parseEnumScalar(prop Property, raw string) (Value, error) {
	switch prop {
	case PropDirection:
		switch raw {
		case "row":
			return EnumValue(Row), nil
		case "column":
			return EnumValue(Column), nil
		}
	case PropJustifyContent:
		switch raw {
		case "start":
			return EnumValue(JustifyStart), nil
		case "end":
			return EnumValue(JustifyEnd), nil
		case "center":
			return EnumValue(JustifyCenter), nil
		case "space-between":
			return EnumValue(JustifySpaceBetween), nil
		case "space-around":
			return EnumValue(JustifySpaceAround), nil
		case "space-evenly":
			return EnumValue(JustifySpaceEvenly), nil
		}
	case PropAlignItems, PropAlignSelf:
		switch raw {
		case "start":
			return EnumValue(AlignStart), nil
		case "end":
			return EnumValue(AlignEnd), nil
		case "center":
			return EnumValue(AlignCenter), nil
		case "stretch":
			return EnumValue(AlignStretch), nil
		case "auto":
			return EnumValue(AlignAuto), nil
		}
	case PropTextAlign:
		switch raw {
		case "left":
			return EnumValue(TextAlignLeft), nil
		case "center":
			return EnumValue(TextAlignCenter), nil
		case "right":
			return EnumValue(TextAlignRight), nil
		}
	}
	return Value{}, fmt.Errorf("invalid %s value %q", prop, raw)
}

// propKind returns the value kind a property expects.
func propKind(prop Property) ValueKind {
	switch prop {
	case PropDirection, PropJustifyContent, PropAlignItems, PropAlignSelf, PropTextAlign:
		return KindEnum
	case PropBackground, PropTextColor, PropBorderColor:
		return KindColor
	case PropFlexGrow, PropFlexShrink, PropOpacity, PropElevation, PropFontWeight:
		return KindNumber
	case PropFontFamily:
		return KindFont
	default:
		return KindLength
	}
}
