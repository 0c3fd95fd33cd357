package vellum

// Tree is an arena of nodes with index-based child lists. Parent/child
// links are IDs into the arena rather than pointers, which keeps
// reconciliation's reuse/discard step a matter of slot bookkeeping and
// avoids lifetime cycles between a node and resources it holds.
type Tree struct {
	nodes []Node
	free  []NodeID
	root  NodeID
	count int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.count
}

// Node returns the node for id, or nil if the id is invalid or the
// node has been discarded.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[id]
	if !n.alive {
		return nil
	}
	return n
}

// Valid returns true if id refers to a live node.
func (t *Tree) Valid(id NodeID) bool {
	return t.Node(id) != nil
}

// nodeRef pins a node identity across arena slot reuse. A bare NodeID
// held across a rebuild can alias an unrelated node recycled into the
// same slot; the epoch disambiguates the two occupants.
type nodeRef struct {
	id    NodeID
	epoch uint64
}

var noRef = nodeRef{id: NoNode}

// ref captures the identity of a live node, or noRef if id is not live.
func (t *Tree) ref(id NodeID) nodeRef {
	n := t.Node(id)
	if n == nil {
		return noRef
	}
	return nodeRef{id: id, epoch: n.epoch}
}

// validRef reports whether r still names the same node it was taken
// from: the slot is live and has not been released since.
func (t *Tree) validRef(r nodeRef) bool {
	n := t.Node(r.id)
	return n != nil && n.epoch == r.epoch
}

// alloc creates a live node with the given identity, reusing a free
// slot when one exists.
func (t *Tree) alloc(kind, key string) NodeID {
	var id NodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, Node{})
		id = NodeID(len(t.nodes) - 1)
	}
	t.nodes[id] = Node{
		id:     id,
		alive:  true,
		epoch:  t.nodes[id].epoch,
		kind:   kind,
		key:    key,
		parent: NoNode,
	}
	t.count++
	return id
}

// release discards a subtree depth-first, running each node's release
// hooks before its slot returns to the free list. Children release
// before their parent so resource teardown mirrors build order.
func (t *Tree) release(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	for _, child := range n.children {
		t.release(child)
	}
	for _, fn := range n.releasers {
		fn()
	}
	*n = Node{parent: NoNode, epoch: n.epoch + 1}
	t.free = append(t.free, id)
	t.count--
	if t.root == id {
		t.root = NoNode
	}
}

// Walk visits the subtree rooted at id in depth-first preorder.
// Returning false from fn prunes the subtree below the current node.
func (t *Tree) Walk(id NodeID, fn func(*Node) bool) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		t.Walk(child, fn)
	}
}
