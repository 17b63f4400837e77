package treeview

import (
	"bufio"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rbset/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Connectors of the sideways tree drawing; each is 4 positions wide.
const (
	upperChild = "┌── "
	lowerChild = "└── "
	verticalIn = "│   "
	emptyIndnt = "    "
	ellipsis   = "…"
)

// Fprint writes a tree sideways to w: the root is in the leftmost column, the
// right subtree is printed above and the left subtree below its parent.
// Reading the output from bottom to top yields the values in order.
//
// label formats a value. Labels are truncated to fit into config.LineWidth,
// using display widths according to config.Context. If config is nil,
// ConfigFromTerminal will be used.
func Fprint[V any](w io.Writer, root *rbtree.ShapeNode[V], label func(V) string, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &consolePrinter[V]{
		out:    bufio.NewWriter(w),
		config: config.normalized(),
		label:  label,
		red:    color.New(color.FgRed),
		black:  color.New(color.Bold),
	}
	if root == nil {
		p.out.WriteString("(empty)\n")
	} else {
		p.print(root, "", "")
	}
	if err := p.out.Flush(); err != nil {
		tracer().Errorf("treeview: console output: %v", err)
		return err
	}
	return nil
}

type consolePrinter[V any] struct {
	out        *bufio.Writer
	config     *Config
	label      func(V) string
	red, black *color.Color
}

// print writes the subtree at n. prefix is the indentation accumulated from
// the ancestors, connector links n to its parent.
func (p *consolePrinter[V]) print(n *rbtree.ShapeNode[V], prefix, connector string) {
	if n.Right != nil {
		p.print(n.Right, prefix+childIndent(connector, upperChild), upperChild)
	}
	p.out.WriteString(prefix)
	p.out.WriteString(connector)
	p.node(n, utf8.RuneCountInString(prefix)+utf8.RuneCountInString(connector))
	p.out.WriteByte('\n')
	if n.Left != nil {
		p.print(n.Left, prefix+childIndent(connector, lowerChild), lowerChild)
	}
}

// childIndent returns the indentation for a child subtree on side of a node
// linked to its own parent by connector. A vertical bar continues between a
// node and its parent whenever the subtree lies in between.
func childIndent(connector, side string) string {
	switch {
	case connector == "":
		return ""
	case connector == side:
		return emptyIndnt
	}
	return verticalIn
}

func (p *consolePrinter[V]) node(n *rbtree.ShapeNode[V], indent int) {
	room := p.config.LineWidth - indent
	if p.config.Plain {
		room -= 2
	}
	text := truncate(p.label(n.Value), room, p.config.Context)
	switch {
	case p.config.Plain && n.Color == rbtree.Red:
		p.out.WriteString("R:" + text)
	case p.config.Plain:
		p.out.WriteString("B:" + text)
	case n.Color == rbtree.Red:
		p.red.Fprint(p.out, text)
	default:
		p.black.Fprint(p.out, text)
	}
}

// truncate shortens s to a display width of at most room, marking the cut
// with an ellipsis. Grapheme clusters are never split.
func truncate(s string, room int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= room {
		return s
	}
	if room <= 0 {
		return ""
	}
	width, cut := 0, ""
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if width+gw > room-1 { // leave room for the ellipsis
			break
		}
		width += gw
		cut += g
	}
	return cut + ellipsis
}
