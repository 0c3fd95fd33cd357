package vellum

// StyleSet is a partial style: a mapping from Property to Value where
// unset properties fall through during cascade merging. The zero value
// is an empty set. StyleSets are value types backed by a fixed array,
// so copies are cheap and merge results are deterministic.
type StyleSet struct {
	values [numProperties]Value
}

// NewStyleSet returns a StyleSet populated from the given entries.
func NewStyleSet(entries map[Property]Value) StyleSet {
	var s StyleSet
	for p, v := range entries {
		s.Set(p, v)
	}
	return s
}

// Set assigns a value to a property, replacing any previous value.
func (s *StyleSet) Set(p Property, v Value) {
	if p < numProperties {
		s.values[p] = v
	}
}

// Get returns the value for a property and whether it is set.
func (s StyleSet) Get(p Property) (Value, bool) {
	if p >= numProperties {
		return Value{}, false
	}
	v := s.values[p]
	return v, v.IsSet()
}

// Has returns true if the property is set.
func (s StyleSet) Has(p Property) bool {
	return p < numProperties && s.values[p].IsSet()
}

// Len returns the number of set properties.
func (s StyleSet) Len() int {
	n := 0
	for _, v := range s.values {
		if v.IsSet() {
			n++
		}
	}
	return n
}

// IsEmpty returns true if no properties are set.
func (s StyleSet) IsEmpty() bool {
	return s.Len() == 0
}

// Properties calls fn for each set property in property-ID order.
func (s StyleSet) Properties(fn func(Property, Value)) {
	for p, v := range s.values {
		if v.IsSet() {
			fn(Property(p), v)
		}
	}
}

// Merge folds override into base, right-biased: for every property set
// in override, the override value wins; unset override properties fall
// through to base. Merge is associative, so cascades can be folded
// left-to-right in match order.
func Merge(base, override StyleSet) StyleSet {
	out := base
	for p, v := range override.values {
		if v.IsSet() {
			out.values[p] = v
		}
	}
	return out
}

// Merge returns the result of merging override into s. See Merge.
func (s StyleSet) Merge(override StyleSet) StyleSet {
	return Merge(s, override)
}

// Equal reports whether two style sets contain identical values.
func (s StyleSet) Equal(other StyleSet) bool {
	return s.values == other.values
}
