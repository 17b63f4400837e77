package rbtree

import "fmt"

// Position denotes either an element of a tree or the end of the tree's
// sequence (one past the maximum, one before the minimum).
//
// Positions are values and may be compared with ==. A position stays valid
// until the element it denotes is erased; after that it is stale and every
// operation on it reports ErrStalePosition. The zero Position belongs to no
// tree.
type Position struct {
	owner *treeID
	node  nodeID
	gen   uint32
}

// IsEnd reports whether p is an end position.
func (p Position) IsEnd() bool {
	return p.node == nilNode
}

func (p Position) String() string {
	if p.IsEnd() {
		return "Position(end)"
	}
	return fmt.Sprintf("Position(#%d.%d)", p.node, p.gen)
}

func (t *Tree[V, K]) position(x nodeID) Position {
	if x == nilNode {
		return Position{owner: t.id}
	}
	return Position{owner: t.id, node: x, gen: t.nodes[x].gen}
}

// resolve maps a position to a node. End resolves to nilNode.
func (t *Tree[V, K]) resolve(p Position) (nodeID, error) {
	if p.owner == nil || p.owner != t.id {
		return nilNode, ErrForeignPosition
	}
	if p.node == nilNode {
		return nilNode, nil
	}
	if int(p.node) >= len(t.nodes) || t.nodes[p.node].gen != p.gen {
		return nilNode, ErrStalePosition
	}
	return p.node, nil
}

func (t *Tree[V, K]) mustResolve(p Position) nodeID {
	x, err := t.resolve(p)
	if err != nil {
		panic(fmt.Errorf("%w: %s", err, p))
	}
	return x
}

// Begin returns the position of the minimum element, or End for an empty tree.
func (t *Tree[V, K]) Begin() Position {
	return t.position(t.leftmost)
}

// End returns the end position of the tree.
func (t *Tree[V, K]) End() Position {
	return t.position(nilNode)
}

// Next returns the position following p in key order. The successor of the
// maximum is End, and the successor of End is End.
//
// Next panics if p is foreign to t or stale.
func (t *Tree[V, K]) Next(p Position) Position {
	x := t.mustResolve(p)
	if x == nilNode {
		return p
	}
	return t.position(t.successor(x))
}

// Prev returns the position preceding p in key order. The predecessor of End
// is the maximum, the predecessor of the minimum is End.
//
// Prev panics if p is foreign to t or stale.
func (t *Tree[V, K]) Prev(p Position) Position {
	x := t.mustResolve(p)
	if x == nilNode {
		return t.position(t.rightmost)
	}
	return t.position(t.predecessor(x))
}

// Value returns the value at position p.
func (t *Tree[V, K]) Value(p Position) (V, error) {
	var zero V
	x, err := t.resolve(p)
	if err != nil {
		return zero, err
	}
	if x == nilNode {
		return zero, ErrEndPosition
	}
	return t.nodes[x].value, nil
}

// Valid reports whether p is a position of t which is not stale. End is
// valid.
func (t *Tree[V, K]) Valid(p Position) bool {
	_, err := t.resolve(p)
	return err == nil
}

// First returns the minimum value. ok is false for an empty tree.
func (t *Tree[V, K]) First() (v V, ok bool) {
	if t.leftmost == nilNode {
		return v, false
	}
	return t.nodes[t.leftmost].value, true
}

// Last returns the maximum value. ok is false for an empty tree.
func (t *Tree[V, K]) Last() (v V, ok bool) {
	if t.rightmost == nilNode {
		return v, false
	}
	return t.nodes[t.rightmost].value, true
}
