/*
Package rbtree provides the red-black tree engine underneath the ordered
containers of rbset.

The package is not a map. A tree stores values of type V and orders them by a
key K which is extracted from each value by a caller-supplied function. Keys
are compared by a caller-supplied predicate which has to implement a strict
weak ordering. Both unique-key (set) and multi-key (multiset) insertion are
supported by the same engine.

Nodes live in a per-tree arena and are addressed by index. Positions handed
out to clients are tagged values: they either denote a node (stamped with the
node's generation, so erased nodes are detected) or the end of the sequence.
There is no sentinel node.

Overview of guarantees:
  - Insert, erase, find and bound queries are O(log n).
  - Equal keys inserted with Insert keep their insertion order.
  - Erasing an element invalidates positions to this element only.
  - Begin/leftmost and rightmost are maintained incrementally in O(1).

A Tree is not safe for concurrent use. Clients have to serialize access
externally.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
