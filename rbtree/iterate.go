package rbtree

import "iter"

// ForEach walks values in key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[V, K]) ForEach(fn func(v V) bool) {
	if t == nil || fn == nil {
		return
	}
	for x := t.leftmost; x != nilNode; x = t.successor(x) {
		if !fn(t.nodes[x].value) {
			return
		}
	}
}

// All returns an iterator over the values in key order.
//
// The loop body may erase the element it has just been handed; any other
// modification of the tree during iteration leaves the iteration undefined.
func (t *Tree[V, K]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for x := t.leftmost; x != nilNode; {
			next := t.successor(x)
			if !yield(t.nodes[x].value) {
				return
			}
			x = next
		}
	}
}

// Backward returns an iterator over the values in reverse key order.
// The same restrictions as for All apply.
func (t *Tree[V, K]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for x := t.rightmost; x != nilNode; {
			prev := t.predecessor(x)
			if !yield(t.nodes[x].value) {
				return
			}
			x = prev
		}
	}
}

// Range returns an iterator over the values of the half-open range
// [from, to). If to does not follow from, iteration runs up to the end.
//
// Range panics if from or to is foreign to t or stale.
func (t *Tree[V, K]) Range(from, to Position) iter.Seq[V] {
	start, stop := t.mustResolve(from), t.mustResolve(to)
	return func(yield func(V) bool) {
		for x := start; x != nilNode && x != stop; {
			next := t.successor(x)
			if !yield(t.nodes[x].value) {
				return
			}
			x = next
		}
	}
}
