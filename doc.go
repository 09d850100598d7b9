/*
Package avl implements a self-balancing binary search tree (AVL tree).

AVL Trees

An AVL tree is a binary search tree which keeps itself height-balanced: for
every node, the heights of its left and right subtree differ by at most one.
Every insertion and deletion is followed by a bottom-up rebalancing pass along
the path from the mutation point to the root, using single or double rotations.
This keeps lookup, insertion and deletion logarithmic in the number of
elements.

From Wikipedia:
In computer science, an AVL tree (named after inventors Adelson-Velsky and
Landis) is a self-balancing binary search tree. In an AVL tree, the heights of
the two child subtrees of any node differ by at most one; if at any time they
differ by more than one, rebalancing is done to restore this property. […]
Lookup, insertion, and deletion all take O(log n) time in both the average and
worst cases.

_________________________________________________________________________

Ordering

Trees do not assume a built-in ordering of their elements. Clients supply a
three-way comparison function when creating a tree:

	tree := avl.New(func(a, b Person) int {
		return strings.Compare(a.Name, b.Name)
	})

For element types satisfying cmp.Ordered there is a shortcut:

	tree := avl.NewOrdered[int]()

The comparison function must implement a strict, consistent total order.
Violating this is not detected and leaves the tree in an undefined state.

Trees are not safe for concurrent use. Clients have to serialize access if a
tree is shared between goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
