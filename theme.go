package vellum

import (
	"fmt"
	"sort"
)

// Theme pairs a token table with per-kind default styles. Switching
// theme on an engine swaps the whole unit; the engine re-resolves only
// the nodes whose consumed tokens actually changed.
//
// Token values must be concrete (never another token and never unset):
// a malformed table is a construction-time hard failure, not something
// discovered mid-frame.
type Theme struct {
	name   string
	tokens map[TokenName]Value
	kinds  map[string]StyleSet
}

// NewTheme creates a theme from a token table. Returns an error if any
// token value is unset or itself a token reference.
func NewTheme(name string, tokens map[TokenName]Value) (*Theme, error) {
	t := &Theme{
		name:   name,
		tokens: make(map[TokenName]Value, len(tokens)),
		kinds:  make(map[string]StyleSet),
	}
	for tok, v := range tokens {
		switch v.Kind {
		case KindUnset:
			return nil, fmt.Errorf("theme %q: token %q has no value", name, tok)
		case KindToken:
			return nil, fmt.Errorf("theme %q: token %q references token %q; token values must be concrete", name, tok, v.Token)
		}
		t.tokens[tok] = v
	}
	return t, nil
}

// Name returns the theme's human-readable name.
func (t *Theme) Name() string {
	return t.name
}

// Lookup resolves a token name to its concrete value.
func (t *Theme) Lookup(name TokenName) (Value, bool) {
	v, ok := t.tokens[name]
	return v, ok
}

// TokenNames returns all token names in sorted order.
func (t *Theme) TokenNames() []TokenName {
	names := make([]TokenName, 0, len(t.tokens))
	for tok := range t.tokens {
		names = append(names, tok)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// RegisterKind declares a component kind and its default style
// overrides. The overrides are layered over the base defaults, so a
// kind's default style is always total. Registering a kind twice
// replaces the previous overrides.
//
// A kind must be registered before descriptors referencing it can
// build; unregistered kinds become placeholder nodes.
func (t *Theme) RegisterKind(kind string, overrides StyleSet) {
	t.kinds[kind] = overrides
}

// HasKind returns true if the kind has registered defaults.
func (t *Theme) HasKind(kind string) bool {
	_, ok := t.kinds[kind]
	return ok
}

// KindDefault returns the total default style for a kind: the base
// defaults merged with the kind's registered overrides. ok is false if
// the kind was never registered.
func (t *Theme) KindDefault(kind string) (StyleSet, bool) {
	overrides, ok := t.kinds[kind]
	if !ok {
		return StyleSet{}, false
	}
	return Merge(baseDefaultStyle(), overrides), true
}

// diffTokens returns the names of tokens whose values differ between
// the two themes, including tokens present in only one of them.
func diffTokens(old, new *Theme) map[TokenName]struct{} {
	changed := make(map[TokenName]struct{})
	for tok, v := range old.tokens {
		if nv, ok := new.tokens[tok]; !ok || nv != v {
			changed[tok] = struct{}{}
		}
	}
	for tok := range new.tokens {
		if _, ok := old.tokens[tok]; !ok {
			changed[tok] = struct{}{}
		}
	}
	return changed
}

// kindsEqual reports whether two themes register identical kind
// defaults. Used to decide between token-granular and full
// invalidation on theme swap.
func kindsEqual(a, b *Theme) bool {
	if len(a.kinds) != len(b.kinds) {
		return false
	}
	for kind, s := range a.kinds {
		other, ok := b.kinds[kind]
		if !ok || !s.Equal(other) {
			return false
		}
	}
	return true
}

// baseDefaultStyle returns the total default style shared by all kinds.
// Every property in the closed set has a value here; this is what
// guarantees a resolved node is never left with an unset property.
func baseDefaultStyle() StyleSet {
	var s StyleSet
	s.Set(PropWidth, Auto())
	s.Set(PropHeight, Auto())
	s.Set(PropMinWidth, Px(0))
	s.Set(PropMinHeight, Px(0))
	s.Set(PropMaxWidth, Auto())
	s.Set(PropMaxHeight, Auto())
	s.Set(PropPaddingTop, Px(0))
	s.Set(PropPaddingRight, Px(0))
	s.Set(PropPaddingBottom, Px(0))
	s.Set(PropPaddingLeft, Px(0))
	s.Set(PropMarginTop, Px(0))
	s.Set(PropMarginRight, Px(0))
	s.Set(PropMarginBottom, Px(0))
	s.Set(PropMarginLeft, Px(0))
	s.Set(PropGap, Px(0))
	s.Set(PropDirection, EnumValue(Row))
	s.Set(PropJustifyContent, EnumValue(JustifyStart))
	s.Set(PropAlignItems, EnumValue(AlignStretch))
	s.Set(PropAlignSelf, EnumValue(AlignAuto))
	s.Set(PropFlexGrow, Number(0))
	s.Set(PropFlexShrink, Number(1))
	s.Set(PropBackground, ColorValue(RGBA(0, 0, 0, 0)))
	s.Set(PropTextColor, ColorValue(RGB(0, 0, 0)))
	s.Set(PropBorderColor, ColorValue(RGBA(0, 0, 0, 0)))
	s.Set(PropBorderWidth, Px(0))
	s.Set(PropCornerRadius, Px(0))
	s.Set(PropOpacity, Number(1))
	s.Set(PropElevation, Number(0))
	s.Set(PropFontFamily, FontValue("sans"))
	s.Set(PropFontSize, Px(14))
	s.Set(PropFontWeight, Number(400))
	s.Set(PropTextAlign, EnumValue(TextAlignLeft))
	return s
}
