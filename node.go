package vellum

import "math/bits"

// NodeID identifies a node within one engine's arena. IDs are stable
// across rebuilds for reconciled nodes and are never reused while the
// node is alive.
type NodeID int32

// NoNode is the absent node ID.
const NoNode NodeID = -1

// StateFlags is the set of transient interaction flags on a node.
type StateFlags uint8

const (
	// StateHover is set while the pointer is over the node.
	StateHover StateFlags = 1 << iota
	// StateActive is set between pointer-down and pointer-up on the node.
	StateActive
	// StateFocused is set on the node holding keyboard focus.
	StateFocused
	// StateDisabled marks the node inert: it never hovers, presses,
	// or focuses, but still renders.
	StateDisabled
	// StateChecked marks toggled/selected nodes.
	StateChecked
)

// Has returns true if all given flags are set.
func (f StateFlags) Has(flags StateFlags) bool {
	return f&flags == flags
}

func (f StateFlags) count() int {
	return bits.OnesCount8(uint8(f))
}

// Node is the mutable runtime instance of a descriptor occurrence in
// the expanded tree. Nodes live in the engine's arena and reference
// children by ID, never by pointer; reconciliation reuses or discards
// them wholesale.
type Node struct {
	id    NodeID
	alive bool

	// epoch counts how many times this arena slot has been released.
	// A nodeRef taken from an earlier occupant of the slot carries an
	// older epoch and so never validates against a recycled node.
	epoch uint64

	// Identity, fixed at allocation: a reconciled node always keeps
	// its kind and key.
	kind string
	key  string

	// Descriptor-supplied content, refreshed on every rebuild.
	variants  []string
	text      string
	imageRef  string
	focusable bool
	onClick   func()
	onKey     func(KeyEvent) bool

	// placeholder marks a node substituted for an unknown kind. It
	// lays out as an empty zero-size box and paints nothing.
	placeholder bool

	// releasers run when reconciliation discards this node, freeing
	// any external resource handles the host attached.
	releasers []func()

	parent   NodeID
	children []NodeID

	state StateFlags

	// dirtyStamp is the engine clock at the last change affecting this
	// node's style: an interaction state flip, a descriptor content
	// change, or a theme-token invalidation.
	dirtyStamp uint64

	resolved    ResolvedStyle
	hasResolved bool
	tokenDeps   []TokenName

	geometry    Rect
	hasGeometry bool
}

// ID returns the node's arena ID.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the component kind the node was built from.
func (n *Node) Kind() string { return n.kind }

// Key returns the stable identity key, or "" for positional identity.
func (n *Node) Key() string { return n.key }

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// State returns the node's current interaction state flags.
func (n *Node) State() StateFlags { return n.state }

// Children returns the node's child IDs in render order.
func (n *Node) Children() []NodeID { return n.children }

// Geometry returns the node's last emitted rectangle and whether a
// frame has produced one yet.
func (n *Node) Geometry() (Rect, bool) { return n.geometry, n.hasGeometry }

// Resolved returns the node's cached resolved style and whether one
// has been computed. Callers must treat staleness via the engine; this
// accessor never re-resolves.
func (n *Node) Resolved() (ResolvedStyle, bool) { return n.resolved, n.hasResolved }

// IsPlaceholder returns true for nodes substituted for unknown kinds.
func (n *Node) IsPlaceholder() bool { return n.placeholder }

// AddReleaser attaches a release hook run when reconciliation discards
// the node. Hosts use this to pair external resource acquisition
// (glyph caches, image handles) with guaranteed release.
func (n *Node) AddReleaser(fn func()) {
	if fn != nil {
		n.releasers = append(n.releasers, fn)
	}
}

// setState flips the node's interaction flags and returns whether that
// changed anything. Stamping is the caller's job.
func (n *Node) setState(set, clear StateFlags) bool {
	next := (n.state | set) &^ clear
	if next == n.state {
		return false
	}
	n.state = next
	return true
}
