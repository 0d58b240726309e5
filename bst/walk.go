package bst

// Order selects the visiting order of a traversal.
type Order int

// Traversal orders. All of them visit every node exactly once.
const (
	InOrder   Order = iota // left subtree, node, right subtree; ascending keys
	PreOrder               // node, left subtree, right subtree
	PostOrder              // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown order"
}

// ForEach walks the entries of the tree in the given order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) ForEach(order Order, fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, order, fn)
}

func (t *Tree[K, V]) forEachNode(n *node[K, V], order Order, fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !fn(n.key, n.value) {
		return false
	}
	if !t.forEachNode(n.left, order, fn) {
		return false
	}
	if order == InOrder && !fn(n.key, n.value) {
		return false
	}
	if !t.forEachNode(n.right, order, fn) {
		return false
	}
	if order == PostOrder && !fn(n.key, n.value) {
		return false
	}
	return true
}

// Inorder returns all entries in ascending key order.
func (t *Tree[K, V]) Inorder() []Entry[K, V] {
	return t.collect(InOrder)
}

// Preorder returns all entries, every node preceding its subtrees.
func (t *Tree[K, V]) Preorder() []Entry[K, V] {
	return t.collect(PreOrder)
}

// Postorder returns all entries, every node following its subtrees.
func (t *Tree[K, V]) Postorder() []Entry[K, V] {
	return t.collect(PostOrder)
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(InOrder, func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (t *Tree[K, V]) collect(order Order) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.Len())
	t.ForEach(order, func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}
