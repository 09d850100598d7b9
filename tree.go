package avl

import (
	"cmp"
	"iter"
)

// Tree is a height-balanced binary search tree holding distinct elements of
// type E, ordered by a client-supplied comparison function.
//
// Operations have the following complexities:
//
//	Operation     |   Tree
//	--------------+-----------
//	Contains      |   O(log n)
//	Insert        |   O(log n)
//	Delete        |   O(log n)
//	DeleteMin     |   O(log n)
//	Iterate       |   O(n)
//
// Trees must be created with New or NewOrdered. They are not safe for
// concurrent use.
type Tree[E any] struct {
	root *Node[E]
	cmp  func(a, b E) int
	size int
}

// New creates an empty tree ordered by compare. compare(a, b) must return a
// negative number if a < b, zero if a == b, and a positive number if a > b.
//
// compare must not be nil.
func New[E any](compare func(a, b E) int) *Tree[E] {
	assert(compare != nil, "avl.New requires a comparison function")
	return &Tree[E]{cmp: compare}
}

// NewOrdered creates an empty tree for an ordered element type, using
// cmp.Compare as the ordering.
func NewOrdered[E cmp.Ordered]() *Tree[E] {
	return New(cmp.Compare[E])
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[E]) Root() *Node[E] {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of elements in the tree.
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a single
// leaf root.
func (t *Tree[E]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.Height()
}

// Contains reports whether an element equal to x is present in the tree.
func (t *Tree[E]) Contains(x E) bool {
	if t == nil {
		return false
	}
	return t.find(x) != nil
}

func (t *Tree[E]) find(x E) *Node[E] {
	n := t.root
	for n != nil {
		switch c := t.cmp(x, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the smallest element of the tree. If the tree is empty, the
// second return value is false.
func (t *Tree[E]) Min() (E, bool) {
	if t.IsEmpty() {
		var zero E
		return zero, false
	}
	return leftmost(t.root).value, true
}

// Max returns the largest element of the tree. If the tree is empty, the
// second return value is false.
func (t *Tree[E]) Max() (E, bool) {
	if t.IsEmpty() {
		var zero E
		return zero, false
	}
	return rightmost(t.root).value, true
}

// Insert adds x to the tree. If an element equal to x is already present,
// the tree is left unchanged.
func (t *Tree[E]) Insert(x E) {
	assert(t != nil && t.cmp != nil, "Insert called on uninitialized tree")
	var inserted bool
	t.root, inserted = t.insert(t.root, x)
	if inserted {
		t.size++
	}
}

func (t *Tree[E]) insert(n *Node[E], x E) (*Node[E], bool) {
	if n == nil {
		return newNode(x), true
	}
	var inserted bool
	switch c := t.cmp(x, n.value); {
	case c < 0:
		n.left, inserted = t.insert(n.left, x)
	case c > 0:
		n.right, inserted = t.insert(n.right, x)
	default:
		return n, false
	}
	return rebalance(n), inserted
}

// Delete removes the element equal to x from the tree. Deleting an element
// which is not present is a no-op.
func (t *Tree[E]) Delete(x E) {
	if t.IsEmpty() {
		return
	}
	var deleted bool
	t.root, deleted = t.delete(t.root, x)
	if deleted {
		t.size--
	}
}

func (t *Tree[E]) delete(n *Node[E], x E) (*Node[E], bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch c := t.cmp(x, n.value); {
	case c < 0:
		n.left, deleted = t.delete(n.left, x)
	case c > 0:
		n.right, deleted = t.delete(n.right, x)
	default:
		// subtrees of n are balanced, so a single remaining child may replace n
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := leftmost(n.right)
		tracer().Debugf("avl: replace %v by successor %v", n.value, succ.value)
		n.value = succ.value
		n.right, _ = t.delete(n.right, succ.value)
		deleted = true
	}
	return rebalance(n), deleted
}

// DeleteMin removes the smallest element from the tree. On an empty tree
// DeleteMin is a no-op.
func (t *Tree[E]) DeleteMin() {
	if t.IsEmpty() {
		return
	}
	t.Delete(leftmost(t.root).value)
}

// EachInOrder calls visit for every element of the tree in ascending order.
// The traversal always runs to completion.
func (t *Tree[E]) EachInOrder(visit func(E)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	inorder(t.root, func(x E) bool {
		visit(x)
		return true
	})
}

// All returns an iterator over the elements of the tree in ascending order.
//
// The tree must not be modified while an iteration is in progress.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.IsEmpty() {
			return
		}
		inorder(t.root, yield)
	}
}

// inorder walks the subtree at n in-order. It stops early and returns false
// as soon as yield returns false.
func inorder[E any](n *Node[E], yield func(E) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.value) && inorder(n.right, yield)
}
