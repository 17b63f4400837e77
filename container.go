package rbset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/rbset/rbtree"
)

// Position addresses an element of a Set or Multiset.
type Position = rbtree.Position

// container holds the operations shared by Set and Multiset. Elements are
// their own keys.
type container[T any] struct {
	tree *rbtree.Tree[T, T]
}

func newContainer[T any](less func(a, b T) bool) (container[T], error) {
	tree, err := rbtree.New(rbtree.Config[T, T]{
		KeyOf: func(v T) T { return v },
		Less:  less,
	})
	if err != nil {
		return container[T]{}, err
	}
	return container[T]{tree: tree}, nil
}

// Len returns the number of elements.
func (c container[T]) Len() int {
	return c.tree.Len()
}

// IsEmpty reports whether there are no elements.
func (c container[T]) IsEmpty() bool {
	return c.tree.IsEmpty()
}

// Find returns the position of an element equivalent to v, or End.
func (c container[T]) Find(v T) Position {
	return c.tree.Find(v)
}

// Contains reports whether an element equivalent to v is present.
func (c container[T]) Contains(v T) bool {
	return c.tree.Contains(v)
}

// LowerBound returns the position of the first element not ordered before v.
func (c container[T]) LowerBound(v T) Position {
	return c.tree.LowerBound(v)
}

// UpperBound returns the position of the first element ordered after v.
func (c container[T]) UpperBound(v T) Position {
	return c.tree.UpperBound(v)
}

// EqualRange returns the half-open range of elements equivalent to v.
func (c container[T]) EqualRange(v T) (from, to Position) {
	return c.tree.EqualRange(v)
}

// Erase removes the element at p and returns the position of its former
// successor. Erasing End is a no-op.
func (c container[T]) Erase(p Position) (Position, error) {
	return c.tree.Erase(p)
}

func (c container[T]) Begin() Position {
	return c.tree.Begin()
}

func (c container[T]) End() Position {
	return c.tree.End()
}

func (c container[T]) Next(p Position) Position {
	return c.tree.Next(p)
}

func (c container[T]) Prev(p Position) Position {
	return c.tree.Prev(p)
}

// Value returns the element at p.
func (c container[T]) Value(p Position) (T, error) {
	return c.tree.Value(p)
}

// Min returns the smallest element, if any.
func (c container[T]) Min() (T, bool) {
	return c.tree.First()
}

// Max returns the largest element, if any.
func (c container[T]) Max() (T, bool) {
	return c.tree.Last()
}

// Clear removes all elements. All positions become stale.
func (c container[T]) Clear() {
	c.tree.Clear()
}

// All returns an iterator over the elements in ascending order.
func (c container[T]) All() iter.Seq[T] {
	return c.tree.All()
}

// Backward returns an iterator over the elements in descending order.
func (c container[T]) Backward() iter.Seq[T] {
	return c.tree.Backward()
}

// Tree gives access to the underlying tree. Clients must not modify the
// tree through it; it is meant for diagnostics like Check, Stats or Shape.
func (c container[T]) Tree() *rbtree.Tree[T, T] {
	return c.tree
}

func (c container[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range c.tree.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}
