package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/containers"
)

// Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Missing children of inner nodes are drawn as small empty circles, so that
// left and right children can be told apart.
func Dot(s Shaper, w io.Writer) error {
	if s == nil || w == nil {
		return fmt.Errorf("%w: Dot needs a shape and a writer", containers.ErrIllegalArguments)
	}
	nodes := s.Shape()
	ids := index(nodes)
	var nodelist, edgelist strings.Builder
	for _, n := range nodes {
		styles := nodeDotStyles(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", n.ID, dotEscape(n.Label), styles)
		if n.IsLeaf() {
			continue
		}
		for i, child := range [2]int{n.Left, n.Right} {
			if child == 0 {
				nilid := fmt.Sprintf("nil%d_%d", n.ID, i)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", n.ID, nilid)
				continue
			}
			if _, ok := ids[child]; !ok {
				tracer().Errorf("tree DOT: node %d has dangling child %d", n.ID, child)
				return fmt.Errorf("%w: dangling child %d", containers.ErrIllegalArguments, child)
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.ID, child)
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n Node) string {
	s := ",style=filled"
	if n.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if n.Highlight {
		s += ",fillcolor=\"#ff6600\""
	} else if !n.IsLeaf() {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

func dotEscape(label string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(label)
}
