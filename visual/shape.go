package visual

// Node is a vertex of a binary tree, flattened for rendering.
//
// IDs are positive and unique within a shape. Left and Right hold the IDs
// of the children, or 0 if a child is absent.
type Node struct {
	ID        int
	Label     string
	Left      int
	Right     int
	Highlight bool // render this node emphasized
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == 0 && n.Right == 0
}

// Shaper is implemented by trees which are able to flatten themselves into
// a list of nodes. The root has to be the first node of the list.
type Shaper interface {
	Shape() []Node
}

// index maps node IDs to nodes.
func index(nodes []Node) map[int]Node {
	m := make(map[int]Node, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}
