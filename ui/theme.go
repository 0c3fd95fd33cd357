package ui

import "github.com/vellum-ui/vellum"

// Component kinds registered by the kit.
const (
	KindStack   = "stack"
	KindLabel   = "label"
	KindButton  = "button"
	KindCard    = "card"
	KindBadge   = "badge"
	KindDivider = "divider"
	KindImage   = "image"
	KindList    = "list"
	KindListRow = "list-row"
)

// Variant selectors understood by the default rule set.
const (
	VariantPrimary   = "primary"
	VariantSecondary = "secondary"
	VariantDanger    = "danger"
	VariantGhost     = "ghost"
)

// DarkTheme returns the default dark theme with all kit kinds
// registered. Panics only on programmer error in the static palette.
func DarkTheme() *vellum.Theme {
	return buildTheme("dark", map[vellum.TokenName]vellum.Value{
		"surface":        vellum.ColorValue(vellum.MustHexColor("#1E1E2E")),
		"surface-raised": vellum.ColorValue(vellum.MustHexColor("#27273A")),
		"text":           vellum.ColorValue(vellum.MustHexColor("#CDD6F4")),
		"text-muted":     vellum.ColorValue(vellum.MustHexColor("#7F849C")),
		"text-inverse":   vellum.ColorValue(vellum.MustHexColor("#11111B")),
		"accent":         vellum.ColorValue(vellum.MustHexColor("#89B4FA")),
		"accent-hover":   vellum.ColorValue(vellum.MustHexColor("#A5C8FF")),
		"accent-active":  vellum.ColorValue(vellum.MustHexColor("#6C8FD8")),
		"danger":         vellum.ColorValue(vellum.MustHexColor("#F38BA8")),
		"danger-hover":   vellum.ColorValue(vellum.MustHexColor("#FFA8C2")),
		"border":         vellum.ColorValue(vellum.MustHexColor("#45475A")),
		"focus-ring":     vellum.ColorValue(vellum.MustHexColor("#89B4FA")),
		"pad-sm":         vellum.Px(6),
		"pad-md":         vellum.Px(12),
		"pad-lg":         vellum.Px(20),
		"radius-sm":      vellum.Px(4),
		"radius-md":      vellum.Px(8),
		"font-body":      vellum.FontValue("Inter"),
		"font-size-sm":   vellum.Px(12),
		"font-size-md":   vellum.Px(14),
		"font-size-lg":   vellum.Px(18),
	})
}

// LightTheme returns the default light theme. Token names are
// identical to DarkTheme, so swapping between the two exercises
// token-granular re-resolution.
func LightTheme() *vellum.Theme {
	return buildTheme("light", map[vellum.TokenName]vellum.Value{
		"surface":        vellum.ColorValue(vellum.MustHexColor("#FFFFFF")),
		"surface-raised": vellum.ColorValue(vellum.MustHexColor("#F1F2F6")),
		"text":           vellum.ColorValue(vellum.MustHexColor("#1F2430")),
		"text-muted":     vellum.ColorValue(vellum.MustHexColor("#6B7280")),
		"text-inverse":   vellum.ColorValue(vellum.MustHexColor("#FFFFFF")),
		"accent":         vellum.ColorValue(vellum.MustHexColor("#2563EB")),
		"accent-hover":   vellum.ColorValue(vellum.MustHexColor("#3B82F6")),
		"accent-active":  vellum.ColorValue(vellum.MustHexColor("#1D4ED8")),
		"danger":         vellum.ColorValue(vellum.MustHexColor("#DC2626")),
		"danger-hover":   vellum.ColorValue(vellum.MustHexColor("#EF4444")),
		"border":         vellum.ColorValue(vellum.MustHexColor("#D1D5DB")),
		"focus-ring":     vellum.ColorValue(vellum.MustHexColor("#2563EB")),
		"pad-sm":         vellum.Px(6),
		"pad-md":         vellum.Px(12),
		"pad-lg":         vellum.Px(20),
		"radius-sm":      vellum.Px(4),
		"radius-md":      vellum.Px(8),
		"font-body":      vellum.FontValue("Inter"),
		"font-size-sm":   vellum.Px(12),
		"font-size-md":   vellum.Px(14),
		"font-size-lg":   vellum.Px(18),
	})
}

func buildTheme(name string, tokens map[vellum.TokenName]vellum.Value) *vellum.Theme {
	t, err := vellum.NewTheme(name, tokens)
	if err != nil {
		panic(err)
	}
	RegisterKinds(t)
	return t
}

// RegisterKinds declares the kit's kind defaults on a theme. Every
// kind resolves total: anything not set here falls through to the base
// defaults. Call this on externally loaded themes so kit components
// stay buildable under them; kinds the theme already registered keep
// their own defaults.
func RegisterKinds(t *vellum.Theme) {
	register := func(kind string, style vellum.StyleSet) {
		if !t.HasKind(kind) {
			t.RegisterKind(kind, style)
		}
	}
	register(KindStack, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropDirection: vellum.EnumValue(vellum.Column),
	}))
	register(KindLabel, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropTextColor:  vellum.Token("text"),
		vellum.PropFontFamily: vellum.Token("font-body"),
		vellum.PropFontSize:   vellum.Token("font-size-md"),
	}))
	register(KindButton, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropBackground:    vellum.Token("surface-raised"),
		vellum.PropTextColor:     vellum.Token("text"),
		vellum.PropBorderColor:   vellum.Token("border"),
		vellum.PropBorderWidth:   vellum.Px(1),
		vellum.PropCornerRadius:  vellum.Token("radius-sm"),
		vellum.PropPaddingTop:    vellum.Token("pad-sm"),
		vellum.PropPaddingBottom: vellum.Token("pad-sm"),
		vellum.PropPaddingLeft:   vellum.Token("pad-md"),
		vellum.PropPaddingRight:  vellum.Token("pad-md"),
		vellum.PropFontFamily:    vellum.Token("font-body"),
		vellum.PropFontSize:      vellum.Token("font-size-md"),
		vellum.PropTextAlign:     vellum.EnumValue(vellum.TextAlignCenter),
	}))
	register(KindCard, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropBackground:    vellum.Token("surface-raised"),
		vellum.PropBorderColor:   vellum.Token("border"),
		vellum.PropBorderWidth:   vellum.Px(1),
		vellum.PropCornerRadius:  vellum.Token("radius-md"),
		vellum.PropPaddingTop:    vellum.Token("pad-lg"),
		vellum.PropPaddingBottom: vellum.Token("pad-lg"),
		vellum.PropPaddingLeft:   vellum.Token("pad-lg"),
		vellum.PropPaddingRight:  vellum.Token("pad-lg"),
		vellum.PropDirection:     vellum.EnumValue(vellum.Column),
		vellum.PropGap:           vellum.Token("pad-md"),
	}))
	register(KindBadge, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropBackground:    vellum.Token("surface-raised"),
		vellum.PropTextColor:     vellum.Token("text-muted"),
		vellum.PropCornerRadius:  vellum.Px(999),
		vellum.PropPaddingTop:    vellum.Px(2),
		vellum.PropPaddingBottom: vellum.Px(2),
		vellum.PropPaddingLeft:   vellum.Token("pad-sm"),
		vellum.PropPaddingRight:  vellum.Token("pad-sm"),
		vellum.PropFontSize:      vellum.Token("font-size-sm"),
	}))
	register(KindDivider, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropBackground: vellum.Token("border"),
		vellum.PropHeight:     vellum.Px(1),
	}))
	register(KindImage, vellum.StyleSet{})
	register(KindList, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropDirection: vellum.EnumValue(vellum.Column),
		vellum.PropGap:       vellum.Px(2),
	}))
	register(KindListRow, vellum.NewStyleSet(map[vellum.Property]vellum.Value{
		vellum.PropDirection:     vellum.EnumValue(vellum.Row),
		vellum.PropPaddingTop:    vellum.Token("pad-sm"),
		vellum.PropPaddingBottom: vellum.Token("pad-sm"),
		vellum.PropPaddingLeft:   vellum.Token("pad-md"),
		vellum.PropPaddingRight:  vellum.Token("pad-md"),
		vellum.PropCornerRadius:  vellum.Token("radius-sm"),
		vellum.PropTextColor:     vellum.Token("text"),
		vellum.PropFontFamily:    vellum.Token("font-body"),
		vellum.PropFontSize:      vellum.Token("font-size-md"),
	}))
}

// DefaultRules returns the kit's style rule set: variant looks and
// interaction-state feedback for buttons and list rows. Hosts append
// their own rules or layer a theme file's overlay on top; later
// registrations win ties, so overlays override cleanly.
func DefaultRules() *vellum.RuleSet {
	rs := vellum.NewRuleSet()

	// Stack orientation is a variant so HStack needs no extra kind.
	rs.Add(vellum.Selector{Kind: KindStack, Variants: []string{"row"}},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropDirection: vellum.EnumValue(vellum.Row),
		}))

	// Button variants.
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantPrimary}},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground:  vellum.Token("accent"),
			vellum.PropTextColor:   vellum.Token("text-inverse"),
			vellum.PropBorderWidth: vellum.Px(0),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantSecondary}},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropTextColor:   vellum.Token("accent"),
			vellum.PropBorderColor: vellum.Token("accent"),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantDanger}},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground:  vellum.Token("danger"),
			vellum.PropTextColor:   vellum.Token("text-inverse"),
			vellum.PropBorderWidth: vellum.Px(0),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantGhost}},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground:  vellum.ColorValue(vellum.RGBA(0, 0, 0, 0)),
			vellum.PropBorderWidth: vellum.Px(0),
			vellum.PropTextColor:   vellum.Token("accent"),
		}))

	// Button interaction states.
	rs.Add(vellum.Selector{Kind: KindButton, States: vellum.StateHover},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground:  vellum.Token("surface-raised"),
			vellum.PropBorderColor: vellum.Token("accent"),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantPrimary}, States: vellum.StateHover},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground: vellum.Token("accent-hover"),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantPrimary}, States: vellum.StateActive},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground: vellum.Token("accent-active"),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, Variants: []string{VariantDanger}, States: vellum.StateHover},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground: vellum.Token("danger-hover"),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, States: vellum.StateFocused},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBorderColor: vellum.Token("focus-ring"),
			vellum.PropBorderWidth: vellum.Px(2),
		}))
	rs.Add(vellum.Selector{Kind: KindButton, States: vellum.StateDisabled},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropOpacity: vellum.Number(0.45),
		}))

	// List rows.
	rs.Add(vellum.Selector{Kind: KindListRow, States: vellum.StateHover},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground: vellum.Token("surface-raised"),
		}))
	rs.Add(vellum.Selector{Kind: KindListRow, States: vellum.StateChecked},
		vellum.NewStyleSet(map[vellum.Property]vellum.Value{
			vellum.PropBackground: vellum.Token("accent"),
			vellum.PropTextColor:  vellum.Token("text-inverse"),
		}))

	return rs
}
