package rbtree

// find returns the last node of the run of keys equal to key, or nilNode.
//
// The descent tracks the last node not greater than key; the candidate is a
// match unless its key is strictly less than key.
func (t *Tree[V, K]) find(key K) nodeID {
	candidate := nilNode
	for x := t.root; x != nilNode; {
		if t.cfg.Less(key, t.key(x)) {
			x = t.nodes[x].left
		} else {
			candidate = x
			x = t.nodes[x].right
		}
	}
	if candidate == nilNode || t.cfg.Less(t.key(candidate), key) {
		return nilNode
	}
	return candidate
}

// lowerBound returns the leftmost node whose key is not less than key.
func (t *Tree[V, K]) lowerBound(key K) nodeID {
	candidate := nilNode
	for x := t.root; x != nilNode; {
		if !t.cfg.Less(t.key(x), key) {
			candidate = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return candidate
}

// upperBound returns the leftmost node whose key is greater than key.
func (t *Tree[V, K]) upperBound(key K) nodeID {
	candidate := nilNode
	for x := t.root; x != nilNode; {
		if t.cfg.Less(key, t.key(x)) {
			candidate = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	return candidate
}

// Find returns the position of an element with a key equal to key, or End.
// For runs of equal keys Find reports the last element of the run.
func (t *Tree[V, K]) Find(key K) Position {
	return t.position(t.find(key))
}

// Contains reports whether an element with a key equal to key is present.
func (t *Tree[V, K]) Contains(key K) bool {
	return t.find(key) != nilNode
}

// LowerBound returns the position of the first element whose key is not less
// than key, or End.
func (t *Tree[V, K]) LowerBound(key K) Position {
	return t.position(t.lowerBound(key))
}

// UpperBound returns the position of the first element whose key is greater
// than key, or End.
func (t *Tree[V, K]) UpperBound(key K) Position {
	return t.position(t.upperBound(key))
}

// EqualRange returns the half-open range [LowerBound(key), UpperBound(key)).
func (t *Tree[V, K]) EqualRange(key K) (from, to Position) {
	return t.LowerBound(key), t.UpperBound(key)
}

// Count returns the number of elements with a key equal to key.
func (t *Tree[V, K]) Count(key K) int {
	n := 0
	for x := t.lowerBound(key); x != nilNode && !t.cfg.Less(key, t.key(x)); x = t.successor(x) {
		n++
	}
	return n
}
