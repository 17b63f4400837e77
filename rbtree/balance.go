package rbtree

// replaceChild re-links the child slot of parent which holds old to hold repl.
// A nil parent means old is the root.
func (t *Tree[V, K]) replaceChild(parent, old, repl nodeID) {
	if parent == nilNode {
		t.root = repl
		return
	}
	p := &t.nodes[parent]
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// rotateLeft lifts the right child of x into x's place. Colors are left
// untouched.
//
//	   x               r
//	  / \             / \
//	 a   r    ==>    x   c
//	    / \         / \
//	   b   c       a   b
func (t *Tree[V, K]) rotateLeft(x nodeID) {
	nx := &t.nodes[x]
	r := nx.right
	assert(r != nilNode, "rotateLeft: node has no right child")
	nr := &t.nodes[r]
	nx.right = nr.left
	if nr.left != nilNode {
		t.nodes[nr.left].parent = x
	}
	nr.parent = nx.parent
	t.replaceChild(nx.parent, x, r)
	nr.left = x
	nx.parent = r
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[V, K]) rotateRight(x nodeID) {
	nx := &t.nodes[x]
	l := nx.left
	assert(l != nilNode, "rotateRight: node has no left child")
	nl := &t.nodes[l]
	nx.left = nl.right
	if nl.right != nilNode {
		t.nodes[nl.right].parent = x
	}
	nl.parent = nx.parent
	t.replaceChild(nx.parent, x, l)
	nl.right = x
	nx.parent = l
}

// insertFix restores the red-black properties after the red node x has been
// attached.
func (t *Tree[V, K]) insertFix(x nodeID) {
	for x != t.root && t.isRed(t.nodes[x].parent) {
		p := t.nodes[x].parent
		g := t.nodes[p].parent // p is red, thus not the root
		if p == t.nodes[g].left {
			if u := t.nodes[g].right; t.isRed(u) {
				t.nodes[p].color = Black
				t.nodes[u].color = Black
				t.nodes[g].color = Red
				x = g
				continue
			}
			if x == t.nodes[p].right { // inner grandchild
				x = p
				t.rotateLeft(x)
				p = t.nodes[x].parent
			}
			t.nodes[p].color = Black
			t.nodes[g].color = Red
			t.rotateRight(g)
		} else {
			if u := t.nodes[g].left; t.isRed(u) {
				t.nodes[p].color = Black
				t.nodes[u].color = Black
				t.nodes[g].color = Red
				x = g
				continue
			}
			if x == t.nodes[p].left {
				x = p
				t.rotateRight(x)
				p = t.nodes[x].parent
			}
			t.nodes[p].color = Black
			t.nodes[g].color = Red
			t.rotateLeft(g)
		}
	}
	t.nodes[t.root].color = Black
}

// eraseFix removes a surplus black from x after a black node has been
// spliced out. x may be nilNode, therefore its parent is passed separately.
func (t *Tree[V, K]) eraseFix(x, parent nodeID) {
	for x != t.root && !t.isRed(x) {
		if x == t.nodes[parent].left {
			s := t.nodes[parent].right
			assert(s != nilNode, "eraseFix: missing sibling")
			if t.isRed(s) {
				t.nodes[s].color = Black
				t.nodes[parent].color = Red
				t.rotateLeft(parent)
				s = t.nodes[parent].right
			}
			if !t.isRed(t.nodes[s].left) && !t.isRed(t.nodes[s].right) {
				t.nodes[s].color = Red
				x = parent
				parent = t.nodes[x].parent
				continue
			}
			if !t.isRed(t.nodes[s].right) { // far child black, near child red
				t.nodes[t.nodes[s].left].color = Black
				t.nodes[s].color = Red
				t.rotateRight(s)
				s = t.nodes[parent].right
			}
			t.nodes[s].color = t.nodes[parent].color
			t.nodes[parent].color = Black
			t.nodes[t.nodes[s].right].color = Black
			t.rotateLeft(parent)
			break
		}
		s := t.nodes[parent].left
		assert(s != nilNode, "eraseFix: missing sibling")
		if t.isRed(s) {
			t.nodes[s].color = Black
			t.nodes[parent].color = Red
			t.rotateRight(parent)
			s = t.nodes[parent].left
		}
		if !t.isRed(t.nodes[s].left) && !t.isRed(t.nodes[s].right) {
			t.nodes[s].color = Red
			x = parent
			parent = t.nodes[x].parent
			continue
		}
		if !t.isRed(t.nodes[s].left) {
			t.nodes[t.nodes[s].right].color = Black
			t.nodes[s].color = Red
			t.rotateLeft(s)
			s = t.nodes[parent].left
		}
		t.nodes[s].color = t.nodes[parent].color
		t.nodes[parent].color = Black
		t.nodes[t.nodes[s].left].color = Black
		t.rotateRight(parent)
		break
	}
	if x != nilNode {
		t.nodes[x].color = Black
	}
}
