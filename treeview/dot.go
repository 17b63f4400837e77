package treeview

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbset/rbtree"
)

// Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are filled red or black, nil leaves are drawn as small black points.
// label formats a value; quotes in labels are escaped.
func Dot[V any](w io.Writer, root *rbtree.ShapeNode[V], label func(V) string) error {
	d := dotWriter[V]{label: label}
	d.nodes.WriteString("strict digraph {\n")
	d.nodes.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if root != nil {
		d.node(root)
	}
	d.edges.WriteString("}\n")
	if _, err := io.WriteString(w, d.nodes.String()+d.edges.String()); err != nil {
		tracer().Errorf("treeview DOT: %s", err.Error())
		return err
	}
	return nil
}

type dotWriter[V any] struct {
	label        func(V) string
	nodes, edges strings.Builder
	max          int // last node ID allocated
}

func (d *dotWriter[V]) alloc() int {
	d.max++
	return d.max
}

func (d *dotWriter[V]) node(n *rbtree.ShapeNode[V]) int {
	id := d.alloc()
	label := strings.ReplaceAll(d.label(n.Value), `"`, `\"`)
	fmt.Fprintf(&d.nodes, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(n.Color))
	for _, child := range [2]*rbtree.ShapeNode[V]{n.Left, n.Right} {
		var cid int
		if child == nil {
			cid = d.alloc()
			fmt.Fprintf(&d.nodes, "\"%d\" %s;\n", cid, emptyNode)
		} else {
			cid = d.node(child)
		}
		fmt.Fprintf(&d.edges, "\"%d\" -> \"%d\";\n", id, cid)
	}
	return id
}

const emptyNode = `[label="",color=black,style=filled,shape=point,width=.1]`

func nodeDotStyles(c rbtree.Color) string {
	s := ",style=filled,shape=circle"
	if c == rbtree.Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff4040\",fontcolor=white"
	} else {
		s += ",color=black,fillcolor=black,fontcolor=white"
	}
	return s
}
