/*
Package compare provides ordering predicates for the containers of rbset.

All predicates implement a strict weak ordering: Less(a, b) reports whether
a orders strictly before b, and two values are considered equivalent if
neither orders before the other.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package compare

import "golang.org/x/exp/constraints"

// Less orders values ascending by Go's < operator.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater orders values descending by Go's > operator.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Reverse inverts an ordering predicate.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// By orders values of type T by a projected key of type K.
func By[T, K any](key func(T) K, less func(a, b K) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return less(key(a), key(b))
	}
}

// FromCmp turns a three-way comparison (as in cmp.Compare or strings.Compare)
// into an ordering predicate.
func FromCmp[T any](cmp func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}

// Equivalent reports whether neither a nor b orders before the other.
func Equivalent[T any](less func(a, b T) bool, a, b T) bool {
	return !less(a, b) && !less(b, a)
}
