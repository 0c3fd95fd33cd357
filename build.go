package vellum

import "slices"

// build.go is the component tree builder: it expands a descriptor tree
// into arena nodes, reusing nodes across rebuilds when kind and
// identity key match at the same position. Reconciliation is
// positional-plus-key, deliberately not a minimal-edit-distance diff:
// matching stays linear in tree size, which fits the common case of
// static structure with dynamic leaf content.

// rebuild replaces the engine's node tree with the expansion of root,
// reconciling against the previous tree. A nil root clears the tree.
func (e *Engine) rebuild(root *Descriptor) {
	prev := e.tree.Root()
	if root == nil {
		if prev != NoNode {
			e.tree.release(prev)
		}
		return
	}
	e.tree.root = e.reconcile(root, prev, NoNode)
}

// reconcile builds the node for d, reusing prev when its identity
// matches, and recurses into children. Discarded subtrees run their
// release hooks before their slots are freed.
func (e *Engine) reconcile(d *Descriptor, prev NodeID, parent NodeID) NodeID {
	placeholder := !e.theme.HasKind(d.kind)
	if placeholder {
		err := &UnknownKindError{Kind: d.kind}
		e.log.Warn().Str("kind", d.kind).Msg(err.Error())
	}

	id := prev
	reused := false
	if prevNode := e.tree.Node(prev); prevNode != nil &&
		prevNode.kind == d.kind && prevNode.key == d.key && prevNode.placeholder == placeholder {
		reused = true
	} else {
		if prev != NoNode {
			e.tree.release(prev)
		}
		id = e.tree.alloc(d.kind, d.key)
	}

	n := e.tree.Node(id)
	n.parent = parent
	n.placeholder = placeholder
	e.applyDescriptor(n, d, reused)

	// Placeholder subtrees are fatal to that subtree only: children
	// are dropped, siblings and ancestors build normally.
	if placeholder {
		for _, child := range n.children {
			e.tree.release(child)
		}
		n.children = nil
		return id
	}

	oldChildren := n.children
	newChildren := make([]NodeID, len(d.children))
	for i, cd := range d.children {
		prevChild := NoNode
		if i < len(oldChildren) {
			prevChild = oldChildren[i]
		}
		newChildren[i] = e.reconcile(cd, prevChild, id)
	}
	for i := len(d.children); i < len(oldChildren); i++ {
		e.tree.release(oldChildren[i])
	}
	n = e.tree.Node(id)
	n.children = newChildren
	return id
}

// applyDescriptor copies descriptor content onto a node. For reused
// nodes it stamps the node dirty only when something that feeds style
// resolution actually changed, so an unchanged rebuild leaves caches
// warm.
func (e *Engine) applyDescriptor(n *Node, d *Descriptor, reused bool) {
	changed := !reused
	if reused {
		if !slices.Equal(n.variants, d.variants) || n.text != d.text || n.imageRef != d.imageRef {
			changed = true
		}
	}

	n.variants = d.variants
	n.text = d.text
	n.imageRef = d.imageRef
	n.focusable = d.focusable
	n.onClick = d.onClick
	n.onKey = d.onKey

	// Disabled and checked are descriptor-driven base state; hover,
	// active, and focus survive reconciliation untouched.
	var set, clear StateFlags
	if d.disabled {
		set |= StateDisabled
	} else {
		clear |= StateDisabled
	}
	if d.checked {
		set |= StateChecked
	} else {
		clear |= StateChecked
	}
	if n.setState(set, clear) {
		changed = true
	}

	if changed {
		n.dirtyStamp = e.tick()
	}
}
