package vellum

// tracker owns the per-engine transient interaction state: which node
// is hovered, which holds keyboard focus, and which (at most one)
// holds pointer capture. It mutates node state flags in response to
// input events and stamps affected nodes for lazy re-resolution.
type tracker struct {
	hovered  nodeRef
	focused  nodeRef
	captured nodeRef
}

func newTracker() tracker {
	return tracker{hovered: noRef, focused: noRef, captured: noRef}
}

// dispatch routes one input event. Pointer capture follows standard
// rules: a pointer-down target captures subsequent move/up events
// regardless of later hit-test results, until pointer-up releases it.
func (e *Engine) dispatch(ev InputEvent) {
	// A captured node that reconciliation destroyed releases capture
	// silently; the UI remains valid, so this is not an error. Refs
	// carry the slot epoch, so a node recycled into the captor's slot
	// during a rebuild never revalidates as the captor.
	if e.trk.captured.id != NoNode && !e.tree.validRef(e.trk.captured) {
		err := &CaptureViolationError{Node: e.trk.captured.id}
		e.log.Debug().Int32("node", int32(e.trk.captured.id)).Msg(err.Error())
		e.trk.captured = noRef
	}
	if e.trk.hovered.id != NoNode && !e.tree.validRef(e.trk.hovered) {
		e.trk.hovered = noRef
	}
	if e.trk.focused.id != NoNode && !e.tree.validRef(e.trk.focused) {
		e.trk.focused = noRef
	}

	switch ev := ev.(type) {
	case PointerMoveEvent:
		e.pointerMove(ev.X, ev.Y)
	case PointerDownEvent:
		e.pointerDown(ev.X, ev.Y)
	case PointerUpEvent:
		e.pointerUp(ev.X, ev.Y)
	case FocusEvent:
		e.setFocus(ev.Target)
	case KeyEvent:
		e.routeKey(ev)
	}
}

func (e *Engine) pointerMove(x, y float64) {
	target := e.trk.captured.id
	if target == NoNode {
		target = e.hitTest(x, y)
	}
	e.setHover(target)
}

func (e *Engine) pointerDown(x, y float64) {
	target := e.hitTest(x, y)
	if target == NoNode {
		e.setFocus(NoNode)
		return
	}
	n := e.tree.Node(target)
	if n.state.Has(StateDisabled) {
		return
	}
	// Single capture holder: a new press always supersedes.
	e.trk.captured = e.tree.ref(target)
	e.flipState(target, StateActive, 0)
	if n.focusable {
		e.setFocus(target)
	} else {
		e.setFocus(NoNode)
	}
}

func (e *Engine) pointerUp(x, y float64) {
	captured := e.trk.captured.id
	e.trk.captured = noRef
	if captured != NoNode {
		e.flipState(captured, 0, StateActive)
		// Click fires only when release happens over the captor.
		if e.hitTest(x, y) == captured {
			if n := e.tree.Node(captured); n != nil && n.onClick != nil && !n.state.Has(StateDisabled) {
				n.onClick()
			}
		}
	}
	// Hover re-evaluates against the actual pointer position now that
	// capture no longer pins the target.
	e.setHover(e.hitTest(x, y))
}

func (e *Engine) setHover(target NodeID) {
	if target != NoNode {
		if n := e.tree.Node(target); n != nil && n.state.Has(StateDisabled) {
			target = NoNode
		}
	}
	if e.trk.hovered.id == target {
		return
	}
	e.flipState(e.trk.hovered.id, 0, StateHover)
	e.flipState(target, StateHover, 0)
	e.trk.hovered = e.tree.ref(target)
}

func (e *Engine) setFocus(target NodeID) {
	if target != NoNode {
		n := e.tree.Node(target)
		if n == nil || !n.focusable || n.state.Has(StateDisabled) {
			target = NoNode
		}
	}
	if e.trk.focused.id == target {
		return
	}
	e.flipState(e.trk.focused.id, 0, StateFocused)
	e.flipState(target, StateFocused, 0)
	e.trk.focused = e.tree.ref(target)
}

func (e *Engine) routeKey(ev KeyEvent) {
	n := e.tree.Node(e.trk.focused.id)
	if n == nil || n.onKey == nil {
		return
	}
	n.onKey(ev)
}

// flipState applies flag changes to a node and bumps its dirty stamp
// when the flags actually changed.
func (e *Engine) flipState(id NodeID, set, clear StateFlags) {
	n := e.tree.Node(id)
	if n == nil {
		return
	}
	if n.setState(set, clear) {
		n.dirtyStamp = e.tick()
	}
}

// hitTest returns the topmost node containing (x, y), judged against
// the geometry of the last emitted frame: the last node in paint order
// whose rect contains the point. Returns NoNode before the first frame
// or on miss.
func (e *Engine) hitTest(x, y float64) NodeID {
	for i := len(e.paintOrder) - 1; i >= 0; i-- {
		id := e.paintOrder[i]
		n := e.tree.Node(id)
		if n == nil || !n.hasGeometry {
			continue
		}
		if n.geometry.Contains(x, y) {
			return id
		}
	}
	return NoNode
}
