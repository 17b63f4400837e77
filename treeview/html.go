package treeview

import (
	"io"

	"github.com/npillmayer/rbset/rbtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders a tree as nested unordered lists. The tree is wrapped into a
// <div class="rbtree">, each node is a list item of class "red" or "black"
// holding the label in a <span>, followed by a list of its two children.
// Missing children of inner nodes are list items of class "nil"; leaves have
// no child list.
func HTML[V any](w io.Writer, root *rbtree.ShapeNode[V], label func(V) string) error {
	div := element(atom.Div, "rbtree")
	if root != nil {
		ul := element(atom.Ul, "")
		ul.AppendChild(htmlNode(root, label))
		div.AppendChild(ul)
	}
	if err := html.Render(w, div); err != nil {
		tracer().Errorf("treeview HTML: %v", err)
		return err
	}
	return nil
}

func htmlNode[V any](n *rbtree.ShapeNode[V], label func(V) string) *html.Node {
	class := "black"
	if n.Color == rbtree.Red {
		class = "red"
	}
	li := element(atom.Li, class)
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.Value)})
	li.AppendChild(span)
	if n.Left == nil && n.Right == nil {
		return li
	}
	children := element(atom.Ul, "")
	for _, child := range [2]*rbtree.ShapeNode[V]{n.Left, n.Right} {
		if child == nil {
			children.AppendChild(element(atom.Li, "nil"))
		} else {
			children.AppendChild(htmlNode(child, label))
		}
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
