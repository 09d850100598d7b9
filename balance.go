package avl

func (n *Node[E]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

// rebalance restores the AVL property at n, assuming both subtrees of n are
// balanced and carry correct heights. It returns the new head of the subtree.
func rebalance[E any](n *Node[E]) *Node[E] {
	n.updateHeight()
	switch bf := n.Balance(); {
	case bf > 1: // left-heavy
		if n.left.Balance() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1: // right-heavy
		if n.right.Balance() > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// rotateLeft makes the right child of n the new subtree head, with n as its
// left child.
//
//	  n                r
//	 / \              / \
//	a   r     =>     n   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft[E any](n *Node[E]) *Node[E] {
	assert(n != nil && n.right != nil, "rotateLeft needs a right child")
	tracer().Debugf("avl: rotate left at %v", n.value)
	r := n.right
	n.right = r.left
	r.left = n
	n.updateHeight()
	r.updateHeight()
	return r
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[E any](n *Node[E]) *Node[E] {
	assert(n != nil && n.left != nil, "rotateRight needs a left child")
	tracer().Debugf("avl: rotate right at %v", n.value)
	l := n.left
	n.left = l.right
	l.right = n
	n.updateHeight()
	l.updateHeight()
	return l
}
