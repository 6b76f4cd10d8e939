/*
Package bstree implements an unbalanced binary search tree with a set of
structural algorithms on top of the usual ordered-set operations.

Ordered set

A Tree holds distinct elements of a totally ordered type. Order is defined by
a three-way comparison function: New uses cmp.Compare for cmp.Ordered element
types, NewFunc accepts any comparison. Inserting an element already present
and removing an element not present are no-ops.

	t := bstree.New[int]()
	for _, x := range []int{40, 10, 50, 5, 20} {
		t.Insert(x)
	}
	lo, _ := t.FindMin() // 5

The tree does not balance itself. Its height depends on insertion order.

Structural algorithms

Besides the ordered-set operations a tree answers questions about its shape:
NodeCount, IsFull, CompareStructure, Equals and IsMirror. Predicates which are
meaningless for an empty tree report ErrUndefinedOnEmpty instead of a default
boolean.

Copy, Mirror, RotateLeft and RotateRight never modify their receiver. They
build a new tree and return it. A rotation which cannot be performed returns
ErrInvalidRotation and leaves the receiver untouched.

Levels returns a restartable iterator over the elements of the tree, one slice
per depth, breadth first.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
