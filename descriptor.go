package vellum

// Descriptor is an immutable template describing what a UI node should
// be, independent of runtime state: a component kind, static props,
// variant selectors, and ordered child descriptors. Hosts build a
// fresh descriptor tree per logical update and submit it to the
// engine; descriptors are never mutated after construction.
type Descriptor struct {
	kind      string
	key       string
	variants  []string
	text      string
	imageRef  string
	focusable bool
	disabled  bool
	checked   bool
	onClick   func()
	onKey     func(KeyEvent) bool
	children  []*Descriptor
}

// DescOption configures a Descriptor during construction.
type DescOption func(*Descriptor)

// NewDescriptor creates a descriptor of the given component kind.
func NewDescriptor(kind string, opts ...DescOption) *Descriptor {
	d := &Descriptor{kind: kind}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Kind returns the component kind.
func (d *Descriptor) Kind() string { return d.kind }

// Key returns the stable identity key, or "" for positional identity.
func (d *Descriptor) Key() string { return d.key }

// Variants returns the variant selectors in declaration order.
func (d *Descriptor) Variants() []string { return d.variants }

// Text returns the text content.
func (d *Descriptor) Text() string { return d.text }

// Children returns the ordered child descriptors.
func (d *Descriptor) Children() []*Descriptor { return d.children }

// WithKey sets a stable identity key. During rebuilds, a node is
// reused only when both kind and key match the descriptor at the same
// position; keys distinguish dynamic list entries that move.
func WithKey(key string) DescOption {
	return func(d *Descriptor) {
		d.key = key
	}
}

// WithVariant adds variant selectors (e.g. "primary", "danger") used
// in style cascade matching.
func WithVariant(variants ...string) DescOption {
	return func(d *Descriptor) {
		d.variants = append(d.variants, variants...)
	}
}

// WithText sets the text content.
func WithText(text string) DescOption {
	return func(d *Descriptor) {
		d.text = text
	}
}

// WithImage sets an image reference. The engine never loads the image;
// the reference passes through to the host's rasterization stack.
func WithImage(ref string) DescOption {
	return func(d *Descriptor) {
		d.imageRef = ref
	}
}

// WithChildren appends child descriptors in render order.
func WithChildren(children ...*Descriptor) DescOption {
	return func(d *Descriptor) {
		d.children = append(d.children, children...)
	}
}

// WithFocusable marks the node as able to take keyboard focus on
// pointer-down or focus events.
func WithFocusable() DescOption {
	return func(d *Descriptor) {
		d.focusable = true
	}
}

// WithDisabled builds the node with StateDisabled set. Disabled nodes
// render but ignore pointer and focus input.
func WithDisabled() DescOption {
	return func(d *Descriptor) {
		d.disabled = true
	}
}

// WithChecked builds the node with StateChecked set.
func WithChecked() DescOption {
	return func(d *Descriptor) {
		d.checked = true
	}
}

// WithOnClick sets the click handler, fired on pointer-up over the
// node that captured the pointer.
func WithOnClick(fn func()) DescOption {
	return func(d *Descriptor) {
		d.onClick = fn
	}
}

// WithOnKey sets the key handler, receiving key events while the node
// holds focus. Return true to consume the event.
func WithOnKey(fn func(KeyEvent) bool) DescOption {
	return func(d *Descriptor) {
		d.onKey = fn
	}
}
