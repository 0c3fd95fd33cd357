package vellum

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine ties the style resolver, tree builder, interaction tracker,
// and emitter to one owned node tree and one active theme. It is
// single-threaded by contract: every method must be called from the
// goroutine that owns the engine. Hosts doing background work marshal
// results back before touching it.
type Engine struct {
	id  string
	log zerolog.Logger

	theme   *Theme
	rules   *RuleSet
	layout  LayoutEngine
	measure TextMeasurer

	tree *Tree
	trk  tracker
	rv   resolver

	// clock is the monotonically increasing generation counter backing
	// all staleness checks. Every mutation that can affect a resolved
	// style bumps it.
	clock      uint64
	themeStamp uint64
	rulesStamp uint64

	// pendingRoot is the latest submitted descriptor tree. Rebuilds
	// always consume the newest submission; an older pending tree is
	// simply abandoned.
	pendingRoot *Descriptor
	hasPending  bool

	paintOrder []NodeID
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithTheme sets the initial theme. Required.
func WithTheme(t *Theme) Option {
	return func(e *Engine) {
		e.theme = t
	}
}

// WithRules sets the initial style rule set.
func WithRules(rs *RuleSet) Option {
	return func(e *Engine) {
		e.rules = rs
	}
}

// WithLayoutEngine sets the external layout engine. Required.
func WithLayoutEngine(le LayoutEngine) Option {
	return func(e *Engine) {
		e.layout = le
	}
}

// WithTextMeasurer replaces the default fixed-advance text measurer.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(e *Engine) {
		e.measure = m
	}
}

// WithLogger sets the engine's logger. Defaults to a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an engine. Misconfiguration (missing theme or layout
// engine) fails here, before any frame renders; nothing after
// construction returns a configuration error.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		id:      uuid.NewString(),
		log:     zerolog.Nop(),
		measure: NewFixedMeasurer(),
		tree:    NewTree(),
		trk:     newTracker(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.theme == nil {
		return nil, errors.New("vellum: engine requires a theme")
	}
	if e.layout == nil {
		return nil, errors.New("vellum: engine requires a layout engine")
	}
	if e.rules == nil {
		e.rules = NewRuleSet()
	}
	e.log = e.log.With().Str("engine", e.id).Logger()
	e.rv = resolver{log: e.log}
	return e, nil
}

// ID returns the engine's instance identifier.
func (e *Engine) ID() string {
	return e.id
}

// Theme returns the active theme.
func (e *Engine) Theme() *Theme {
	return e.theme
}

// Tree returns the engine's live node tree. Read-only for hosts.
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Focused returns the node holding keyboard focus, or NoNode.
func (e *Engine) Focused() NodeID {
	if !e.tree.validRef(e.trk.focused) {
		return NoNode
	}
	return e.trk.focused.id
}

// Captured returns the node holding pointer capture, or NoNode.
func (e *Engine) Captured() NodeID {
	if !e.tree.validRef(e.trk.captured) {
		return NoNode
	}
	return e.trk.captured.id
}

// tick advances and returns the engine's generation clock.
func (e *Engine) tick() uint64 {
	e.clock++
	return e.clock
}

// Submit stages a descriptor tree for the next frame. The latest
// submission always wins: submitting again before the next frame
// replaces the staged tree, and the superseded one is never built.
func (e *Engine) Submit(root *Descriptor) {
	e.pendingRoot = root
	e.hasPending = true
}

// SetRules atomically replaces the style rule set and invalidates
// every node's resolved style.
func (e *Engine) SetRules(rs *RuleSet) {
	if rs == nil {
		rs = NewRuleSet()
	}
	e.rules = rs
	e.rulesStamp = e.tick()
}

// SetTheme swaps the active theme. Invalidation is token-granular when
// only token values changed: nodes re-resolve only if a token they
// consumed was redefined. Differing kind defaults invalidate
// everything.
func (e *Engine) SetTheme(t *Theme) error {
	if t == nil {
		return errors.New("vellum: nil theme")
	}
	old := e.theme
	e.theme = t

	if !kindsEqual(old, t) {
		e.themeStamp = e.tick()
		return nil
	}

	changed := diffTokens(old, t)
	if len(changed) == 0 {
		return nil
	}
	stamp := e.tick()
	root := e.tree.Root()
	e.tree.Walk(root, func(n *Node) bool {
		for _, dep := range n.tokenDeps {
			if _, ok := changed[dep]; ok {
				n.dirtyStamp = stamp
				break
			}
		}
		return true
	})
	return nil
}

// Dispatch consumes one input event from the windowing layer, updating
// interaction state and generation stamps. Affected subtrees
// re-resolve lazily on the next frame.
func (e *Engine) Dispatch(ev InputEvent) {
	e.dispatch(ev)
}

// RenderFrame builds the staged descriptor tree if one is pending,
// re-resolves stale styles, and runs the two-phase emit against the
// external layout engine. Intra-frame failures (unknown kinds, bad
// tokens, rejected layout) recover locally; the frame always renders.
func (e *Engine) RenderFrame(viewport Size) (*Frame, error) {
	if e.hasPending {
		root := e.pendingRoot
		e.pendingRoot = nil
		e.hasPending = false
		e.rebuild(root)
	}
	e.resolveStale()
	return e.emit(viewport)
}

// ResolveNode returns the node's current resolved style, re-resolving
// first if it is stale. Exposed for hosts inspecting styles outside a
// frame (the story harness, tests).
func (e *Engine) ResolveNode(id NodeID) (ResolvedStyle, bool) {
	n := e.tree.Node(id)
	if n == nil {
		return ResolvedStyle{}, false
	}
	e.resolveNode(n)
	return n.resolved, true
}

// resolveStale walks the tree re-resolving every node whose resolved
// style generation is behind a change that affects it.
func (e *Engine) resolveStale() {
	e.tree.Walk(e.tree.Root(), func(n *Node) bool {
		e.resolveNode(n)
		return true
	})
}

func (e *Engine) resolveNode(n *Node) {
	if n.hasResolved && n.resolved.gen >= e.themeStamp && n.resolved.gen >= e.rulesStamp && n.resolved.gen >= n.dirtyStamp {
		return
	}
	gen := e.tick()
	n.resolved, n.tokenDeps = e.rv.resolve(n.kind, n.variants, n.state, e.theme, e.rules, gen)
	n.hasResolved = true
}
