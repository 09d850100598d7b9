package avl

import "errors"

// Errors are reported by the invariant checker only. Operations on trees
// do not fail.
var (
	// ErrOrder signals a violation of the binary search tree ordering,
	// including duplicate elements.
	ErrOrder = errors.New("avl: ordering violated")
	// ErrUnbalanced signals a node with subtree heights differing by more than 1.
	ErrUnbalanced = errors.New("avl: node out of balance")
	// ErrHeight signals a cached node height which does not match the subtrees.
	ErrHeight = errors.New("avl: height mismatch")
	// ErrSize signals an element count which does not match the number of nodes.
	ErrSize = errors.New("avl: size mismatch")
)
