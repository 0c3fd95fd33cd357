package vellum

import "sort"

// Selector describes which nodes a style rule applies to. Kind match is
// mandatory; variants and state flags are optional extra filters. A
// selector with variants matches only nodes carrying every listed
// variant; a selector with state flags matches only nodes whose
// interaction state has every flag set.
type Selector struct {
	Kind     string
	Variants []string
	States   StateFlags
}

// Matches reports whether the selector applies to a node with the
// given kind, variant set, and interaction state.
func (s Selector) Matches(kind string, variants []string, state StateFlags) bool {
	if s.Kind != kind {
		return false
	}
	if state&s.States != s.States {
		return false
	}
	for _, want := range s.Variants {
		found := false
		for _, have := range variants {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// specificity scores a selector for cascade ordering. State conditions
// always outrank variant conditions, which outrank a bare kind match,
// so the weights keep the tiers disjoint regardless of condition count.
func (s Selector) specificity() int {
	return int(s.States.count())*1000 + len(s.Variants)
}

// Rule binds a selector to a partial style. Rules are registered at
// theme-load time and shared by reference across all resolutions.
type Rule struct {
	Selector Selector
	Style    StyleSet

	// order is the registration sequence number. Later registrations
	// win specificity ties, which is what makes theme overlays work.
	order int
}

// RuleSet is an ordered collection of style rules indexed by kind.
// Append-only: replacing the whole set is how rule overlays are
// swapped atomically.
type RuleSet struct {
	rules  []Rule
	byKind map[string][]int
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{byKind: make(map[string][]int)}
}

// Add registers a rule. Registration order is significant: among rules
// of equal specificity, later registrations override earlier ones.
func (rs *RuleSet) Add(sel Selector, style StyleSet) {
	idx := len(rs.rules)
	rs.rules = append(rs.rules, Rule{Selector: sel, Style: style, order: idx})
	rs.byKind[sel.Kind] = append(rs.byKind[sel.Kind], idx)
}

// Append registers every rule from other after the rules already in
// rs, preserving other's internal order. Used to layer a theme file's
// rule overlay over a base set.
func (rs *RuleSet) Append(other *RuleSet) {
	if other == nil {
		return
	}
	for _, r := range other.rules {
		rs.Add(r.Selector, r.Style)
	}
}

// Len returns the number of registered rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// match returns the rules applying to (kind, variants, state), sorted
// for cascade folding: ascending specificity, ties broken by ascending
// registration order. Folding the result left-to-right with Merge
// therefore lets the most specific, most recently registered rule win.
func (rs *RuleSet) match(kind string, variants []string, state StateFlags) []Rule {
	indices := rs.byKind[kind]
	if len(indices) == 0 {
		return nil
	}
	matched := make([]Rule, 0, len(indices))
	for _, i := range indices {
		r := rs.rules[i]
		if r.Selector.Matches(kind, variants, state) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := matched[i].Selector.specificity(), matched[j].Selector.specificity()
		if si != sj {
			return si < sj
		}
		return matched[i].order < matched[j].order
	})
	return matched
}
