package vellum

import (
	"testing"
)

func TestSelectorMatches(t *testing.T) {
	type tc struct {
		sel      Selector
		kind     string
		variants []string
		state    StateFlags
		want     bool
	}

	tests := map[string]tc{
		"kind only": {
			sel:  Selector{Kind: "button"},
			kind: "button",
			want: true,
		},
		"kind mismatch": {
			sel:  Selector{Kind: "button"},
			kind: "label",
			want: false,
		},
		"variant present": {
			sel:      Selector{Kind: "button", Variants: []string{"primary"}},
			kind:     "button",
			variants: []string{"primary", "large"},
			want:     true,
		},
		"variant missing": {
			sel:      Selector{Kind: "button", Variants: []string{"primary"}},
			kind:     "button",
			variants: []string{"secondary"},
			want:     false,
		},
		"all variants required": {
			sel:      Selector{Kind: "button", Variants: []string{"primary", "large"}},
			kind:     "button",
			variants: []string{"primary"},
			want:     false,
		},
		"state subset": {
			sel:   Selector{Kind: "button", States: StateHover},
			kind:  "button",
			state: StateHover | StateFocused,
			want:  true,
		},
		"state missing": {
			sel:   Selector{Kind: "button", States: StateHover | StateActive},
			kind:  "button",
			state: StateHover,
			want:  false,
		},
		"extra node state ignored": {
			sel:   Selector{Kind: "button"},
			kind:  "button",
			state: StateHover | StateFocused | StateChecked,
			want:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.sel.Matches(tt.kind, tt.variants, tt.state); got != tt.want {
				t.Errorf("Matches(%q, %v, %v) = %v, want %v", tt.kind, tt.variants, tt.state, got, tt.want)
			}
		})
	}
}

func TestSpecificityTiers(t *testing.T) {
	bare := Selector{Kind: "button"}
	variant := Selector{Kind: "button", Variants: []string{"a", "b", "c", "d", "e"}}
	state := Selector{Kind: "button", States: StateHover}

	if bare.specificity() >= variant.specificity() {
		t.Error("bare kind selector should rank below variant selector")
	}
	if variant.specificity() >= state.specificity() {
		t.Error("variant selector should rank below state selector, regardless of variant count")
	}
}

func TestRuleSetMatchOrdering(t *testing.T) {
	rs := NewRuleSet()
	rs.Add(Selector{Kind: "button", States: StateHover}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(3, 3, 3)),
	}))
	rs.Add(Selector{Kind: "button"}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(1, 1, 1)),
	}))
	rs.Add(Selector{Kind: "button", Variants: []string{"primary"}}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(2, 2, 2)),
	}))

	matched := rs.match("button", []string{"primary"}, StateHover)
	if len(matched) != 3 {
		t.Fatalf("match returned %d rules, want 3", len(matched))
	}

	// Ascending specificity: bare kind, then variant, then state.
	wantOrder := []Color{RGB(1, 1, 1), RGB(2, 2, 2), RGB(3, 3, 3)}
	for i, want := range wantOrder {
		v, _ := matched[i].Style.Get(PropBackground)
		if v != ColorValue(want) {
			t.Errorf("match[%d] background = %v, want %v", i, v, ColorValue(want))
		}
	}
}

func TestRuleSetRegistrationOrderBreaksTies(t *testing.T) {
	rs := NewRuleSet()
	rs.Add(Selector{Kind: "badge"}, NewStyleSet(map[Property]Value{
		PropTextColor: ColorValue(RGB(1, 0, 0)),
	}))
	rs.Add(Selector{Kind: "badge"}, NewStyleSet(map[Property]Value{
		PropTextColor: ColorValue(RGB(0, 1, 0)),
	}))

	matched := rs.match("badge", nil, 0)
	if len(matched) != 2 {
		t.Fatalf("match returned %d rules, want 2", len(matched))
	}
	// Later registration sorts last, so it wins the left-to-right fold.
	v, _ := matched[1].Style.Get(PropTextColor)
	if v != ColorValue(RGB(0, 1, 0)) {
		t.Errorf("last rule text color = %v, want later registration", v)
	}
}

func TestRuleSetMatchFiltersState(t *testing.T) {
	rs := NewRuleSet()
	rs.Add(Selector{Kind: "button", States: StateHover}, StyleSet{})
	rs.Add(Selector{Kind: "button"}, StyleSet{})

	if got := len(rs.match("button", nil, 0)); got != 1 {
		t.Errorf("match without hover returned %d rules, want 1", got)
	}
	if got := len(rs.match("button", nil, StateHover)); got != 2 {
		t.Errorf("match with hover returned %d rules, want 2", got)
	}
	if got := rs.match("unknown", nil, 0); got != nil {
		t.Errorf("match(unknown) = %v, want nil", got)
	}
}

func TestRuleSetAppend(t *testing.T) {
	base := NewRuleSet()
	base.Add(Selector{Kind: "card"}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(1, 1, 1)),
	}))

	overlay := NewRuleSet()
	overlay.Add(Selector{Kind: "card"}, NewStyleSet(map[Property]Value{
		PropBackground: ColorValue(RGB(2, 2, 2)),
	}))

	base.Append(overlay)
	if base.Len() != 2 {
		t.Fatalf("Len() after Append = %d, want 2", base.Len())
	}

	matched := base.match("card", nil, 0)
	v, _ := matched[len(matched)-1].Style.Get(PropBackground)
	if v != ColorValue(RGB(2, 2, 2)) {
		t.Errorf("overlay rule did not sort after base rule on equal specificity")
	}

	base.Append(nil)
	if base.Len() != 2 {
		t.Errorf("Append(nil) changed Len() to %d", base.Len())
	}
}
