package bintree

import (
	"fmt"

	"github.com/npillmayer/containers/visual"
)

// Shape flattens the tree for package visual, root first. Nodes whose
// subtree heights differ by more than one are highlighted.
func (t *Tree[K]) Shape() []visual.Node {
	nodes := make([]visual.Node, 0, t.Len())
	if t == nil || t.root == nil {
		return nodes
	}
	unbalanced := make(map[*node[K]]bool)
	eachHeight(t.root, func(n *node[K], lh, rh int) {
		if lh-rh > 1 || rh-lh > 1 {
			unbalanced[n] = true
		}
	})
	var walk func(n *node[K]) int
	walk = func(n *node[K]) int {
		if n == nil {
			return 0
		}
		id := len(nodes) + 1
		nodes = append(nodes, visual.Node{
			ID:        id,
			Label:     fmt.Sprintf("%v", n.key),
			Highlight: unbalanced[n],
		})
		left := walk(n.left)
		right := walk(n.right)
		nodes[id-1].Left, nodes[id-1].Right = left, right
		return id
	}
	walk(t.root)
	return nodes
}
