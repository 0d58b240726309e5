package bintree

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Check validates structural tree invariants: keys in a left subtree compare
// less than the subtree's parent, keys in a right subtree compare greater or
// equal, and the cached size matches the node count.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", containers.ErrIllegalArguments)
	}
	if t.compare == nil {
		return fmt.Errorf("%w: tree has no comparison function", containers.ErrIllegalArguments)
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", containers.ErrIllegalArguments, count, t.size)
	}
	return nil
}

// checkNode checks lo ≤ key < hi for all keys of the subtree at n, where
// nil bounds are unbounded.
func (t *Tree[K]) checkNode(n *node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.compare(n.key, *lo) < 0 {
		return 0, fmt.Errorf("%w: key %v in right subtree of %v",
			containers.ErrIllegalArguments, n.key, *lo)
	}
	if hi != nil && t.compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v in left subtree of %v",
			containers.ErrIllegalArguments, n.key, *hi)
	}
	left, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
