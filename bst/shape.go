package bst

import (
	"fmt"

	"github.com/npillmayer/containers/visual"
)

// Shape flattens the tree for package visual, root first. Nodes are
// labeled “key: value”.
func (t *Tree[K, V]) Shape() []visual.Node {
	nodes := make([]visual.Node, 0, t.Len())
	var walk func(n *node[K, V]) int
	walk = func(n *node[K, V]) int {
		if n == nil {
			return 0
		}
		id := len(nodes) + 1
		nodes = append(nodes, visual.Node{
			ID:    id,
			Label: fmt.Sprintf("%v: %v", n.key, n.value),
		})
		left := walk(n.left)
		right := walk(n.right)
		nodes[id-1].Left, nodes[id-1].Right = left, right
		return id
	}
	if t != nil {
		walk(t.root)
	}
	return nodes
}
