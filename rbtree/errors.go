package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrEndPosition signals an attempt to dereference the end position.
	ErrEndPosition = errors.New("rbtree: end position")
	// ErrForeignPosition signals a position which does not belong to the tree.
	ErrForeignPosition = errors.New("rbtree: position from a different tree")
	// ErrStalePosition signals a position whose element has been erased.
	ErrStalePosition = errors.New("rbtree: stale position")
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
