package bintree

// Order selects the visiting order of a traversal.
type Order int

// Traversal orders.
const (
	InOrder   Order = iota // left subtree, node, right subtree
	PreOrder               // node, left subtree, right subtree
	PostOrder              // left subtree, right subtree, node
)

// ForEach walks the keys of the tree in the given order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(order Order, fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, order, fn)
}

func forEachNode[K any](n *node[K], order Order, fn func(K) bool) bool {
	if n == nil {
		return true
	}
	switch order {
	case PreOrder:
		return fn(n.key) && forEachNode(n.left, order, fn) && forEachNode(n.right, order, fn)
	case PostOrder:
		return forEachNode(n.left, order, fn) && forEachNode(n.right, order, fn) && fn(n.key)
	}
	return forEachNode(n.left, order, fn) && fn(n.key) && forEachNode(n.right, order, fn)
}

// Inorder returns all keys in ascending order.
func (t *Tree[K]) Inorder() []K {
	return t.collect(InOrder)
}

// Preorder returns all keys, every node preceding its subtrees.
func (t *Tree[K]) Preorder() []K {
	return t.collect(PreOrder)
}

// Postorder returns all keys, every node following its subtrees.
func (t *Tree[K]) Postorder() []K {
	return t.collect(PostOrder)
}

func (t *Tree[K]) collect(order Order) []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(order, func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
