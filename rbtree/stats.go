package rbtree

import "fmt"

// Stats holds structural metrics of a tree.
type Stats struct {
	Len         int // number of values
	Height      int // number of nodes on the longest root-to-leaf path
	BlackHeight int // number of black nodes on any root-to-leaf path
	Red         int // number of red nodes
	Black       int // number of black nodes
	ArenaSlots  int // allocated node slots
	FreeSlots   int // released slots available for reuse
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d height=%d black-height=%d red=%d black=%d slots=%d/%d free",
		s.Len, s.Height, s.BlackHeight, s.Red, s.Black, s.ArenaSlots, s.FreeSlots)
}

// Stats collects structural metrics of the tree. It is O(n).
func (t *Tree[V, K]) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	s.Len = t.size
	s.ArenaSlots = len(t.nodes) - 1
	s.FreeSlots = len(t.free)
	for x := t.root; x != nilNode; x = t.nodes[x].left {
		if t.nodes[x].color == Black {
			s.BlackHeight++
		}
	}
	s.Height = t.collect(t.root, &s)
	return s
}

func (t *Tree[V, K]) collect(x nodeID, s *Stats) (height int) {
	if x == nilNode {
		return 0
	}
	if t.nodes[x].color == Red {
		s.Red++
	} else {
		s.Black++
	}
	return 1 + max(t.collect(t.nodes[x].left, s), t.collect(t.nodes[x].right, s))
}

// ShapeNode is a node of a read-only snapshot of a tree's structure.
type ShapeNode[V any] struct {
	Value V
	Color Color
	Left  *ShapeNode[V]
	Right *ShapeNode[V]
}

// Shape returns a snapshot of the tree's structure, or nil for an empty tree.
// The snapshot is detached from the tree and is meant for diagnostic output.
func (t *Tree[V, K]) Shape() *ShapeNode[V] {
	if t == nil {
		return nil
	}
	return t.shape(t.root)
}

func (t *Tree[V, K]) shape(x nodeID) *ShapeNode[V] {
	if x == nilNode {
		return nil
	}
	n := t.nodes[x]
	return &ShapeNode[V]{
		Value: n.value,
		Color: n.color,
		Left:  t.shape(n.left),
		Right: t.shape(n.right),
	}
}
