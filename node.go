package avl

// Node is a node of an AVL tree. It holds a single element and exclusively
// owns its children.
//
// Clients may inspect nodes through the accessors below, which are all safe
// to call on a nil node. Nodes cannot be modified from outside the package.
type Node[E any] struct {
	value  E
	left   *Node[E]
	right  *Node[E]
	height int // 1 for a leaf
}

func newNode[E any](value E) *Node[E] {
	return &Node[E]{value: value, height: 1}
}

// Value returns the element stored in the node, or the zero value for nil.
func (n *Node[E]) Value() E {
	if n == nil {
		var zero E
		return zero
	}
	return n.value
}

// Left returns the left child of n, if any.
func (n *Node[E]) Left() *Node[E] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, if any.
func (n *Node[E]) Right() *Node[E] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the height of the subtree rooted at n. Leafs have height 1,
// absent nodes have height 0.
func (n *Node[E]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns the balance factor of n, i.e. height(left) − height(right).
func (n *Node[E]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// IsLeaf reports whether n has no children.
func (n *Node[E]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func leftmost[E any](n *Node[E]) *Node[E] {
	assert(n != nil, "leftmost called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[E any](n *Node[E]) *Node[E] {
	assert(n != nil, "rightmost called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}
