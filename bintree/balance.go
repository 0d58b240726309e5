package bintree

// IsBalanced reports whether, for every node, the heights of its left and
// right subtree differ by at most one. An empty tree is balanced.
//
// Heights and balance are computed together in one bottom-up pass, which
// stops at the first imbalance found.
func (t *Tree[K]) IsBalanced() bool {
	if t == nil {
		return true
	}
	_, balanced := checkBalance(t.root)
	return balanced
}

// checkBalance returns the height of the subtree at n and whether it is
// balanced. The height is meaningless for unbalanced subtrees.
func checkBalance[K any](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := checkBalance(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Unbalanced returns the keys of all nodes whose subtree heights differ by
// more than one, bottom-up (post-order). For a balanced tree the result is
// empty.
func (t *Tree[K]) Unbalanced() []K {
	var keys []K
	if t == nil {
		return keys
	}
	eachHeight(t.root, func(n *node[K], lh, rh int) {
		if lh-rh > 1 || rh-lh > 1 {
			keys = append(keys, n.key)
		}
	})
	tracer().Debugf("bintree: %d unbalanced nodes", len(keys))
	return keys
}

// eachHeight visits the subtree at n in post-order, passing the heights of
// every node's subtrees to fn, and returns the height of n.
func eachHeight[K any](n *node[K], fn func(n *node[K], lh, rh int)) int {
	if n == nil {
		return 0
	}
	lh := eachHeight(n.left, fn)
	rh := eachHeight(n.right, fn)
	fn(n, lh, rh)
	return max(lh, rh) + 1
}
