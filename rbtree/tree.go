package rbtree

// Tree is a red-black tree of values V, ordered by keys K.
//
// The key of a value is computed by Config.KeyOf and keys are ordered by
// Config.Less. A tree owns all of its nodes; positions obtained from a tree
// are only meaningful for this tree.
type Tree[V, K any] struct {
	cfg       Config[V, K]
	id        *treeID
	nodes     []node[V] // nodes[0] is the reserved nil slot
	free      []nodeID
	root      nodeID
	leftmost  nodeID // minimum node, nilNode for an empty tree
	rightmost nodeID // maximum node, nilNode for an empty tree
	size      int
}

// New creates an empty tree with validated configuration.
func New[V, K any](cfg Config[V, K]) (*Tree[V, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[V, K]{cfg: cfg.normalized()}
	t.reset()
	return t, nil
}

// reset turns t into a fresh empty tree with new contents identity.
func (t *Tree[V, K]) reset() {
	t.id = new(treeID)
	t.nodes = make([]node[V], 1)
	t.nodes[nilNode].color = Black
	t.free = nil
	t.root, t.leftmost, t.rightmost = nilNode, nilNode, nilNode
	t.size = 0
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V, K]) Config() Config[V, K] {
	return t.cfg
}

// Len returns the number of values in the tree.
func (t *Tree[V, K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V, K]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// Clear removes all values from the tree. All positions into the tree, except
// End, become stale.
//
// Nodes are released in post-order; a node is unlinked from its parent before
// the walk continues at the parent.
func (t *Tree[V, K]) Clear() {
	if t == nil || t.size == 0 {
		return
	}
	tracer().Debugf("rbtree: clearing %d nodes", t.size)
	x := t.root
	for x != nilNode {
		n := &t.nodes[x]
		switch {
		case n.left != nilNode:
			x = n.left
		case n.right != nilNode:
			x = n.right
		default:
			p := n.parent
			if p != nilNode {
				if t.nodes[p].left == x {
					t.nodes[p].left = nilNode
				} else {
					t.nodes[p].right = nilNode
				}
			}
			t.release(x)
			x = p
		}
	}
	t.root, t.leftmost, t.rightmost = nilNode, nilNode, nilNode
	t.size = 0
}

// Clone returns a deep copy of the tree.
//
// Nodes are copied one by one, preserving colors and shape. The clone has its
// own identity: positions of t are foreign to the clone.
func (t *Tree[V, K]) Clone() *Tree[V, K] {
	if t == nil {
		return nil
	}
	c := &Tree[V, K]{
		cfg:   t.cfg,
		id:    new(treeID),
		nodes: make([]node[V], 1, t.size+1),
	}
	c.nodes[nilNode].color = Black
	c.root = c.copySubtree(t, t.root, nilNode)
	c.size = t.size
	c.leftmost = c.minimum(c.root)
	c.rightmost = c.maximum(c.root)
	tracer().Debugf("rbtree: cloned tree of %d nodes", c.size)
	return c
}

func (t *Tree[V, K]) copySubtree(src *Tree[V, K], x, parent nodeID) nodeID {
	if x == nilNode {
		return nilNode
	}
	y := t.alloc(src.nodes[x].value)
	t.nodes[y].color = src.nodes[x].color
	t.nodes[y].parent = parent
	left := t.copySubtree(src, src.nodes[x].left, y)
	right := t.copySubtree(src, src.nodes[x].right, y)
	t.nodes[y].left = left
	t.nodes[y].right = right
	return y
}

// Move transfers the contents of t to a new tree and leaves t empty.
//
// Positions obtained from t before the move denote the same elements in the
// returned tree.
func (t *Tree[V, K]) Move() *Tree[V, K] {
	if t == nil {
		return nil
	}
	moved := &Tree[V, K]{}
	*moved = *t
	t.reset()
	tracer().Debugf("rbtree: moved tree of %d nodes", moved.size)
	return moved
}

// Swap exchanges the contents (including configuration) of t and other.
// Positions follow the contents they have been obtained from.
func (t *Tree[V, K]) Swap(other *Tree[V, K]) {
	if t == nil || other == nil || t == other {
		return
	}
	*t, *other = *other, *t
}
