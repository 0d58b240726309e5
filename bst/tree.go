package bst

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/containers"
)

// Tree is an ordered map from keys of type K to values of type V.
// Trees have to be created with New or NewOrdered; the zero value has no
// comparison function and panics as soon as two keys have to be compared.
type Tree[K, V any] struct {
	compare func(a, b K) int
	root    *node[K, V]
	size    int
}

const errNoCompare = "bst: tree has no comparison function, create it with New or NewOrdered"

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Entry is a key/value pair as produced by traversals.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// New creates an empty tree ordering keys by compare. compare(a, b) has to
// return a negative number for a < b, zero for a == b and a positive number
// for a > b, and must define a total order.
func New[K, V any](compare func(a, b K) int) (*Tree[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: tree needs a comparison function", containers.ErrIllegalArguments)
	}
	return &Tree[K, V]{compare: compare}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert stores value for key. If key is already present, its value is
// overwritten and Insert returns true.
func (t *Tree[K, V]) Insert(key K, value V) (replaced bool) {
	slot := &t.root
	depth := 0
	for *slot != nil {
		n := *slot
		assert(t.compare != nil, errNoCompare)
		switch c := t.compare(key, n.key); {
		case c < 0:
			slot = &n.left
		case c > 0:
			slot = &n.right
		default:
			tracer().Debugf("bst: overwrite value for key %v", key)
			n.value = value
			return true
		}
		depth++
	}
	*slot = &node[K, V]{key: key, value: value}
	t.size++
	tracer().Debugf("bst: attach key %v at depth %d", key, depth)
	return false
}

// Search returns the value stored for key. If key is not present, Search
// returns the zero value and false.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if n := *t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return *t.find(key) != nil
}

// Delete removes key from the tree and returns the value which had been
// stored for it. If key is not present, the tree remains unchanged and
// Delete returns false.
//
// A node with two children is replaced by its in-order successor, i.e. the
// leftmost node of its right subtree.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	slot := t.find(key)
	n := *slot
	if n == nil {
		return zero, false
	}
	switch {
	case n.left == nil:
		*slot = n.right
		tracer().Debugf("bst: delete key %v, splice right subtree", key)
	case n.right == nil:
		*slot = n.left
		tracer().Debugf("bst: delete key %v, splice left subtree", key)
	default:
		succslot := &n.right
		for (*succslot).left != nil {
			succslot = &(*succslot).left
		}
		succ := *succslot
		*succslot = succ.right
		succ.left, succ.right = n.left, n.right
		*slot = succ
		tracer().Debugf("bst: delete key %v, replace by successor %v", key, succ.key)
	}
	n.left, n.right = nil, nil
	t.size--
	return n.value, true
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	if t.IsEmpty() {
		return Entry[K, V]{}, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	if t.IsEmpty() {
		return Entry[K, V]{}, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

// find returns the child slot which holds key, or the empty slot where key
// would have to be attached.
func (t *Tree[K, V]) find(key K) **node[K, V] {
	if t == nil {
		var empty *node[K, V]
		return &empty
	}
	slot := &t.root
	for *slot != nil {
		n := *slot
		assert(t.compare != nil, errNoCompare)
		c := t.compare(key, n.key)
		if c == 0 {
			break
		}
		if c < 0 {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}
	return slot
}
