package rbtree

import "math"

// Color is the color bit of a tree node.
type Color uint8

const (
	// Red nodes never have red children.
	Red Color = iota
	// Black nodes count towards the black-height of a path.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// nodeID addresses a node within the arena of a tree. Slot 0 is reserved and
// serves as the nil link.
type nodeID int32

const nilNode nodeID = 0

const maxNodeID = math.MaxInt32

type node[V any] struct {
	value  V
	left   nodeID
	right  nodeID
	parent nodeID
	color  Color
	gen    uint32 // bumped whenever the slot is released
}

// treeID identifies the contents of a tree. It travels with the contents on
// Swap and Move. It must not be a zero-sized type, otherwise distinct
// allocations could share an address.
type treeID struct {
	_ byte
}

// alloc takes a slot from the free list or grows the arena. New nodes are red
// and unlinked.
//
// alloc may re-allocate the arena, invalidating *node pointers held by the
// caller.
func (t *Tree[V, K]) alloc(v V) nodeID {
	var x nodeID
	if n := len(t.free); n > 0 {
		x = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if len(t.nodes) >= maxNodeID {
			panic("rbtree: node arena exhausted")
		}
		t.nodes = append(t.nodes, node[V]{})
		x = nodeID(len(t.nodes) - 1)
	}
	n := &t.nodes[x]
	n.value = v
	n.left, n.right, n.parent = nilNode, nilNode, nilNode
	n.color = Red
	return x
}

// release returns a slot to the free list. Positions denoting the slot become
// stale.
func (t *Tree[V, K]) release(x nodeID) {
	assert(x != nilNode, "release of nil node")
	n := &t.nodes[x]
	var zero V
	n.value = zero
	n.left, n.right, n.parent = nilNode, nilNode, nilNode
	n.color = Red
	n.gen++
	t.free = append(t.free, x)
}

func (t *Tree[V, K]) key(x nodeID) K {
	return t.cfg.KeyOf(t.nodes[x].value)
}

func (t *Tree[V, K]) isRed(x nodeID) bool {
	return x != nilNode && t.nodes[x].color == Red
}

func (t *Tree[V, K]) minimum(x nodeID) nodeID {
	if x == nilNode {
		return nilNode
	}
	for t.nodes[x].left != nilNode {
		x = t.nodes[x].left
	}
	return x
}

func (t *Tree[V, K]) maximum(x nodeID) nodeID {
	if x == nilNode {
		return nilNode
	}
	for t.nodes[x].right != nilNode {
		x = t.nodes[x].right
	}
	return x
}

// successor returns the in-order successor of x, or nilNode if x is the
// maximum.
func (t *Tree[V, K]) successor(x nodeID) nodeID {
	if r := t.nodes[x].right; r != nilNode {
		return t.minimum(r)
	}
	p := t.nodes[x].parent
	for p != nilNode && x == t.nodes[p].right {
		x = p
		p = t.nodes[p].parent
	}
	return p
}

// predecessor returns the in-order predecessor of x, or nilNode if x is the
// minimum.
func (t *Tree[V, K]) predecessor(x nodeID) nodeID {
	if l := t.nodes[x].left; l != nilNode {
		return t.maximum(l)
	}
	p := t.nodes[x].parent
	for p != nilNode && x == t.nodes[p].left {
		x = p
		p = t.nodes[p].parent
	}
	return p
}
