package bintree

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/containers"
)

// Tree is a binary tree of keys of type K.
// Trees have to be created with New or NewOrdered; the zero value has no
// comparison function and panics as soon as two keys have to be compared.
type Tree[K any] struct {
	compare func(a, b K) int
	root    *node[K]
	size    int
}

const errNoCompare = "bintree: tree has no comparison function, create it with New or NewOrdered"

type node[K any] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// New creates an empty tree routing keys by compare, which has to define a
// total order (see cmp.Compare).
func New[K any](compare func(a, b K) int) (*Tree[K], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: tree needs a comparison function", containers.ErrIllegalArguments)
	}
	return &Tree[K]{compare: compare}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert adds key as a new leaf. Duplicate keys are inserted into the right
// subtree of their equal.
func (t *Tree[K]) Insert(key K) {
	slot := &t.root
	depth := 0
	for *slot != nil {
		n := *slot
		assert(t.compare != nil, errNoCompare)
		if t.compare(key, n.key) < 0 {
			slot = &n.left
		} else {
			slot = &n.right
		}
		depth++
	}
	*slot = &node[K]{key: key}
	t.size++
	tracer().Debugf("bintree: attach key %v at depth %d", key, depth)
}

// Search reports whether key is contained in the tree.
func (t *Tree[K]) Search(key K) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		assert(t.compare != nil, errNoCompare)
		c := t.compare(key, n.key)
		if c == 0 {
			return true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0, a single node has height 1.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}
