package rbtree

// findInsertPos descends from the root to the nil slot where a value with key
// would be attached. Keys not less than a node's key go right, so equal keys
// end up after the existing ones.
func (t *Tree[V, K]) findInsertPos(key K) (parent nodeID, left bool) {
	left = true
	for x := t.root; x != nilNode; {
		parent = x
		left = t.cfg.Less(key, t.key(x))
		if left {
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return parent, left
}

// Insert inserts v, even if an element with an equal key is already present.
// The new element is placed after all elements with an equal key. The flag
// is always true.
func (t *Tree[V, K]) Insert(v V) (Position, bool) {
	parent, left := t.findInsertPos(t.cfg.KeyOf(v))
	return t.position(t.attach(v, parent, left)), true
}

// InsertUnique inserts v if no element with an equal key is present. If there
// is one, the tree is left unchanged and the position of the existing element
// is returned together with false.
func (t *Tree[V, K]) InsertUnique(v V) (Position, bool) {
	key := t.cfg.KeyOf(v)
	parent, left := t.findInsertPos(key)
	if parent != nilNode {
		// Only the in-order neighbour at the attach slot may carry an equal key:
		// the predecessor of parent for a left slot, parent itself for a right one.
		if left {
			if parent != t.leftmost {
				pred := t.predecessor(parent)
				if !t.cfg.Less(t.key(pred), key) {
					return t.position(pred), false
				}
			}
		} else if !t.cfg.Less(t.key(parent), key) {
			return t.position(parent), false
		}
	}
	return t.position(t.attach(v, parent, left)), true
}

// attach links a new red node for v into the child slot of parent and
// rebalances.
func (t *Tree[V, K]) attach(v V, parent nodeID, left bool) nodeID {
	x := t.alloc(v)
	t.nodes[x].parent = parent
	switch {
	case parent == nilNode:
		t.root = x
		t.leftmost, t.rightmost = x, x
	case left:
		t.nodes[parent].left = x
		if parent == t.leftmost {
			t.leftmost = x
		}
	default:
		t.nodes[parent].right = x
		if parent == t.rightmost {
			t.rightmost = x
		}
	}
	t.insertFix(x)
	t.size++
	return x
}

// Erase removes the element at p and returns the position of the element
// following it. Erasing End is a no-op returning End.
//
// Only positions denoting the erased element become stale. In particular, if
// the erased node had two children, its in-order successor is re-linked into
// its place and keeps its identity.
func (t *Tree[V, K]) Erase(p Position) (Position, error) {
	x, err := t.resolve(p)
	if err != nil {
		return t.End(), err
	}
	if x == nilNode {
		return t.End(), nil
	}
	next := t.successor(x)
	t.eraseNode(x)
	return t.position(next), nil
}

// EraseUnique removes at most one element with a key equal to key, namely
// the one Find would report. It returns the number of elements removed.
func (t *Tree[V, K]) EraseUnique(key K) int {
	x := t.find(key)
	if x == nilNode {
		return 0
	}
	t.eraseNode(x)
	return 1
}

// EraseMulti removes all elements with a key equal to key and returns their
// number.
func (t *Tree[V, K]) EraseMulti(key K) int {
	count := 0
	x := t.lowerBound(key)
	for x != nilNode && !t.cfg.Less(key, t.key(x)) {
		next := t.successor(x)
		t.eraseNode(x)
		x = next
		count++
	}
	return count
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (t *Tree[V, K]) transplant(u, v nodeID) {
	up := t.nodes[u].parent
	t.replaceChild(up, u, v)
	if v != nilNode {
		t.nodes[v].parent = up
	}
}

// eraseNode unlinks z from the tree, rebalances and releases z's slot.
func (t *Tree[V, K]) eraseNode(z nodeID) {
	nz := t.nodes[z] // copy, z's links are overwritten below
	if z == t.leftmost {
		// z has no left child
		if nz.right != nilNode {
			t.leftmost = t.minimum(nz.right)
		} else {
			t.leftmost = nz.parent
		}
	}
	if z == t.rightmost {
		if nz.left != nilNode {
			t.rightmost = t.maximum(nz.left)
		} else {
			t.rightmost = nz.parent
		}
	}
	spliced := nz.color
	var x, xparent nodeID
	switch {
	case nz.left == nilNode:
		x, xparent = nz.right, nz.parent
		t.transplant(z, x)
	case nz.right == nilNode:
		x, xparent = nz.left, nz.parent
		t.transplant(z, x)
	default:
		// The successor y has no left child. It is spliced out of its own
		// position and takes over z's position and color.
		y := t.minimum(nz.right)
		spliced = t.nodes[y].color
		x = t.nodes[y].right
		if t.nodes[y].parent == z {
			xparent = y
		} else {
			xparent = t.nodes[y].parent
			t.transplant(y, x)
			t.nodes[y].right = nz.right
			t.nodes[nz.right].parent = y
		}
		t.transplant(z, y)
		t.nodes[y].left = nz.left
		t.nodes[nz.left].parent = y
		t.nodes[y].color = nz.color
	}
	if spliced == Black {
		t.eraseFix(x, xparent)
	}
	t.release(z)
	t.size--
}
