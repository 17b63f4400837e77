package rbset

import (
	"github.com/npillmayer/rbset/compare"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique elements. Create sets with New or NewFunc;
// the zero value is not usable.
type Set[T any] struct {
	container[T]
}

// New creates an empty set ordered by Go's < operator.
func New[T constraints.Ordered]() *Set[T] {
	s, err := NewFunc(compare.Less[T])
	if err != nil {
		panic(err) // cannot happen with a non-nil predicate
	}
	return s
}

// NewFunc creates an empty set ordered by less, which has to implement a
// strict weak ordering.
func NewFunc[T any](less func(a, b T) bool) (*Set[T], error) {
	c, err := newContainer(less)
	if err != nil {
		return nil, err
	}
	return &Set[T]{container: c}, nil
}

// Insert adds v unless an equivalent element is already present. It returns
// the position of the element equivalent to v and whether v has been added.
func (s *Set[T]) Insert(v T) (Position, bool) {
	return s.tree.InsertUnique(v)
}

// Delete removes the element equivalent to v and returns the number of
// elements removed (0 or 1).
func (s *Set[T]) Delete(v T) int {
	return s.tree.EraseUnique(v)
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{container: container[T]{tree: s.tree.Clone()}}
}

// Move transfers the elements of s into a new set and leaves s empty.
// Positions into s continue to address the elements in the new set.
func (s *Set[T]) Move() *Set[T] {
	return &Set[T]{container: container[T]{tree: s.tree.Move()}}
}

// Swap exchanges the contents of s and other in O(1).
func (s *Set[T]) Swap(other *Set[T]) {
	s.tree.Swap(other.tree)
}
