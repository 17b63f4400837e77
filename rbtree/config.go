package rbtree

import "fmt"

// Config configures a red-black tree.
//
// KeyOf has to be a pure function. Less has to implement a strict weak
// ordering on keys: for keys a and b at most one of Less(a, b) and Less(b, a)
// holds, and a and b are considered equal if neither holds. Violations are not
// detected by the tree (however, Check will most likely report them).
type Config[V, K any] struct {
	// KeyOf extracts the ordering key from a value.
	KeyOf func(V) K
	// Less reports whether key a orders before key b.
	Less func(a, b K) bool
}

func (cfg Config[V, K]) normalized() Config[V, K] {
	return cfg
}

func (cfg Config[V, K]) validate() error {
	cfg = cfg.normalized()
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: key extraction function is required", ErrInvalidConfig)
	}
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparison predicate is required", ErrInvalidConfig)
	}
	return nil
}
