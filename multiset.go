package rbset

import (
	"github.com/npillmayer/rbset/compare"
	"golang.org/x/exp/constraints"
)

// Multiset is an ordered collection which may contain equivalent elements.
// Equivalent elements are kept in insertion order. Create multisets with
// NewMultiset or NewMultisetFunc; the zero value is not usable.
type Multiset[T any] struct {
	container[T]
}

// NewMultiset creates an empty multiset ordered by Go's < operator.
func NewMultiset[T constraints.Ordered]() *Multiset[T] {
	m, err := NewMultisetFunc(compare.Less[T])
	if err != nil {
		panic(err)
	}
	return m
}

// NewMultisetFunc creates an empty multiset ordered by less.
func NewMultisetFunc[T any](less func(a, b T) bool) (*Multiset[T], error) {
	c, err := newContainer(less)
	if err != nil {
		return nil, err
	}
	return &Multiset[T]{container: c}, nil
}

// Insert adds v behind all elements equivalent to it and returns its position.
func (m *Multiset[T]) Insert(v T) Position {
	p, _ := m.tree.Insert(v)
	return p
}

// Delete removes all elements equivalent to v and returns their number.
func (m *Multiset[T]) Delete(v T) int {
	return m.tree.EraseMulti(v)
}

// Count returns the number of elements equivalent to v.
func (m *Multiset[T]) Count(v T) int {
	return m.tree.Count(v)
}

// Clone returns an independent copy of m.
func (m *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{container: container[T]{tree: m.tree.Clone()}}
}

// Move transfers the elements of m into a new multiset and leaves m empty.
func (m *Multiset[T]) Move() *Multiset[T] {
	return &Multiset[T]{container: container[T]{tree: m.tree.Move()}}
}

// Swap exchanges the contents of m and other in O(1).
func (m *Multiset[T]) Swap(other *Multiset[T]) {
	m.tree.Swap(other.tree)
}
