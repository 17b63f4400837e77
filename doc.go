/*
Package rbset offers ordered sets and multisets of arbitrary element types.

Sets

A Set keeps unique elements in the order given by a comparison predicate, a
Multiset additionally keeps any number of equivalent elements. Both are thin
adaptors over the red-black tree engine of package rbtree, which does all the
balancing, searching and position handling. Lookups, insertions and removals
are O(log n); the smallest element is available in O(1).

	s := rbset.New[int]()
	s.Insert(5)
	s.Insert(3)
	for v := range s.All() {
	    fmt.Println(v)       // prints 3, then 5
	}

Elements are addressed by positions. A position stays valid until the
element it refers to is removed; positions of other elements are never
affected by insertions or removals. The position past the largest element is
End(). Positions handed to a container they do not belong to are rejected
with rbtree.ErrForeignPosition, positions to removed elements with
rbtree.ErrStalePosition.

Ordering predicates for common cases are found in package compare. Package
treeview prints the shape of the underlying tree, package keyfile loads
elements from text files.

Sets are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
