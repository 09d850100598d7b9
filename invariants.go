package avl

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every left subtree holds strictly smaller, every right subtree strictly
//     greater elements than its parent,
//   - for every node the subtree heights differ by at most 1,
//   - every cached node height equals 1 + the maximum height of its children,
//   - the element count matches the number of nodes.
//
// Check is intended for tests and debugging. A nil tree is valid and empty.
func (t *Tree[E]) Check() error {
	if t == nil {
		return nil
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree reports %d elements, has %d nodes", ErrSize, t.size, count)
	}
	return nil
}

// checkNode checks the subtree at n, whose elements must lie strictly between
// lower and upper (nil meaning unbounded). It returns the node count and the
// recomputed height of the subtree.
func (t *Tree[E]) checkNode(n *Node[E], lower, upper *E) (count int, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lower != nil && t.cmp(n.value, *lower) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v not greater than %v", ErrOrder, n.value, *lower)
	}
	if upper != nil && t.cmp(n.value, *upper) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v not less than %v", ErrOrder, n.value, *upper)
	}
	lcount, lheight, err := t.checkNode(n.left, lower, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right, &n.value, upper)
	if err != nil {
		return 0, 0, err
	}
	height = max(lheight, rheight) + 1
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v has height %d, expected %d",
			ErrHeight, n.value, n.height, height)
	}
	if bf := lheight - rheight; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrUnbalanced, n.value, bf)
	}
	return lcount + rcount + 1, height, nil
}
