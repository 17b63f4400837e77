package rbtree

import "fmt"

// Check validates the structural tree invariants:
//
//   - the root is black and has no parent,
//   - no red node has a red child,
//   - every path from a node to a nil leaf has the same number of black nodes,
//   - parent links agree with child links,
//   - an in-order walk is non-decreasing under Less,
//   - the cached size, minimum and maximum agree with the reachable nodes,
//   - every arena slot is either reachable or on the free list.
//
// Check is O(n) and intended for tests and diagnostics.
func (t *Tree[V, K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	err := t.check()
	if err != nil {
		tracer().Errorf("rbtree: %v", err)
	}
	return err
}

func (t *Tree[V, K]) check() error {
	if len(t.nodes) == 0 || t.id == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvalidConfig)
	}
	if t.nodes[nilNode].color != Black {
		return fmt.Errorf("%w: nil slot is not black", ErrInvariant)
	}
	if slots := len(t.nodes) - 1; slots != t.size+len(t.free) {
		return fmt.Errorf("%w: arena has %d slots, %d in use, %d free",
			ErrInvariant, slots, t.size, len(t.free))
	}
	if t.root == nilNode {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariant, t.size)
		}
		if t.leftmost != nilNode || t.rightmost != nilNode {
			return fmt.Errorf("%w: empty tree has cached extremes", ErrInvariant)
		}
		return nil
	}
	if t.nodes[t.root].parent != nilNode {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if t.nodes[t.root].color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable, size %d)", ErrInvariant, count, t.size)
	}
	if lo := t.minimum(t.root); t.leftmost != lo {
		return fmt.Errorf("%w: leftmost is #%d, minimum is #%d", ErrInvariant, t.leftmost, lo)
	}
	if hi := t.maximum(t.root); t.rightmost != hi {
		return fmt.Errorf("%w: rightmost is #%d, maximum is #%d", ErrInvariant, t.rightmost, hi)
	}
	return t.checkOrder()
}

// checkNode returns the number of nodes and the black-height of the subtree
// at x. Nil leaves have black-height 1.
func (t *Tree[V, K]) checkNode(x nodeID) (count int, blackHeight int, err error) {
	if x == nilNode {
		return 0, 1, nil
	}
	if int(x) >= len(t.nodes) {
		return 0, 0, fmt.Errorf("%w: link to #%d beyond arena", ErrInvariant, x)
	}
	n := t.nodes[x]
	for _, child := range [2]nodeID{n.left, n.right} {
		if child == nilNode {
			continue
		}
		if int(child) >= len(t.nodes) || t.nodes[child].parent != x {
			return 0, 0, fmt.Errorf("%w: child #%d does not link back to #%d", ErrInvariant, child, x)
		}
		if n.color == Red && t.nodes[child].color == Red {
			return 0, 0, fmt.Errorf("%w: red node #%d has red child #%d", ErrInvariant, x, child)
		}
	}
	lcount, lheight, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: black-height differs below #%d (%d != %d)",
			ErrInvariant, x, lheight, rheight)
	}
	if n.color == Black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

func (t *Tree[V, K]) checkOrder() error {
	prev := t.leftmost
	for x := t.successor(prev); x != nilNode; x = t.successor(x) {
		if t.cfg.Less(t.key(x), t.key(prev)) {
			return fmt.Errorf("%w: #%d orders before its predecessor #%d", ErrInvariant, x, prev)
		}
		prev = x
	}
	return nil
}
