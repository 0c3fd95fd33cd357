package vellum

import (
	"sort"

	"github.com/rs/zerolog"
)

// ResolvedStyle is the final flattened style for one node: every
// property in the closed set carries a concrete value (tokens resolved,
// defaults filled). The generation records the engine clock at
// resolution time and is compared against change stamps to detect
// staleness; a stale style is lazily re-resolved, never silently used.
type ResolvedStyle struct {
	values [numProperties]Value
	gen    uint64
}

// Generation returns the engine clock at which this style was resolved.
func (r ResolvedStyle) Generation() uint64 {
	return r.gen
}

// Value returns the concrete value for a property.
func (r ResolvedStyle) Value(p Property) Value {
	if p >= numProperties {
		return Value{}
	}
	return r.values[p]
}

// Color returns the property's color payload.
func (r ResolvedStyle) Color(p Property) Color {
	return r.Value(p).Color
}

// Length returns the property's length payload.
func (r ResolvedStyle) Length(p Property) Length {
	return r.Value(p).Length
}

// Px returns the property's length resolved as absolute pixels,
// treating auto and percent as zero. Convenience for spacing props,
// which are always registered in px.
func (r ResolvedStyle) Px(p Property) float64 {
	l := r.Value(p).Length
	if l.Unit != UnitPx {
		return 0
	}
	return l.Amount
}

// Number returns the property's numeric payload.
func (r ResolvedStyle) Number(p Property) float64 {
	return r.Value(p).Number
}

// Enum returns the property's enum payload.
func (r ResolvedStyle) Enum(p Property) int {
	return r.Value(p).Enum
}

// Font returns the property's font family payload.
func (r ResolvedStyle) Font(p Property) string {
	return r.Value(p).Font
}

// Equal reports whether two resolved styles hold identical values,
// ignoring generation.
func (r ResolvedStyle) Equal(other ResolvedStyle) bool {
	return r.values == other.values
}

// resolver computes final styles. It is stateless apart from its
// logger; caching lives on the nodes, keyed by generation stamps.
type resolver struct {
	log zerolog.Logger
}

// resolve computes the flattened style for (kind, variants, state)
// against the given theme and rules. The returned token list names
// every theme token the resolution consumed, sorted and deduplicated;
// the engine records it as the node's invalidation dependency set.
//
// Resolution is deterministic: the same inputs always produce an
// identical value array. Matched rules fold left-to-right in ascending
// (specificity, registration) order, seeded with the theme's total
// kind default, then token references flatten to concrete values.
func (rv *resolver) resolve(kind string, variants []string, state StateFlags, theme *Theme, rules *RuleSet, gen uint64) (ResolvedStyle, []TokenName) {
	seed, ok := theme.KindDefault(kind)
	if !ok {
		// Placeholder nodes resolve against bare defaults.
		seed = baseDefaultStyle()
	}

	merged := seed
	for _, rule := range rules.match(kind, variants, state) {
		merged = Merge(merged, rule.Style)
	}

	out := ResolvedStyle{gen: gen}
	tokens := make(map[TokenName]struct{})
	for p := Property(0); p < numProperties; p++ {
		v, _ := merged.Get(p)
		if v.Kind == KindToken {
			tokens[v.Token] = struct{}{}
			resolved, found := theme.Lookup(v.Token)
			if !found {
				err := &InvalidValueError{Token: v.Token, Property: p, Kind: kind}
				rv.log.Warn().Str("kind", kind).Str("property", p.String()).Str("token", string(v.Token)).Msg(err.Error())
				// Fall back to the kind default for this property.
				resolved, _ = seed.Get(p)
				if resolved.Kind == KindToken {
					tokens[resolved.Token] = struct{}{}
					if fb, fbOK := theme.Lookup(resolved.Token); fbOK {
						resolved = fb
					} else {
						resolved, _ = baseDefaultStyle().Get(p)
					}
				}
			}
			v = resolved
		}
		out.values[p] = v
	}

	deps := make([]TokenName, 0, len(tokens))
	for tok := range tokens {
		deps = append(deps, tok)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })
	return out, deps
}
