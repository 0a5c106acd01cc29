// Package markup builds small HTML-like documents as a tree of nodes and
// renders them through an indent.Writer.
//
// A node is either a block node (open tag, one indented line per child,
// close tag) or a single-line node (everything on one line). Children are
// nested nodes or text leaves; text is written with its natural fmt form.
package markup

import (
	"fmt"
	"strings"

	"github.com/dskyberg/instance-count/pkg/indent"
)

type nodeKind int

const (
	kindElement nodeKind = iota
	kindComment
)

// Attr is one attribute of a node. A nil Value renders as a bare name.
type Attr struct {
	Name  string
	Value any
}

// A returns an attribute with a value.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// Bare returns a value-less attribute such as "disabled".
func Bare(name string) Attr {
	return Attr{Name: name}
}

// Class returns a class attribute.
func Class(value string) Attr {
	return Attr{Name: "class", Value: value}
}

// Options are the recognized construction options of a node.
type Options struct {
	SingleLine bool
	// OmitClose suppresses the closing tag, for void elements.
	OmitClose bool
	Attrs     []Attr
}

// Node is an element or comment in the document tree.
type Node struct {
	kind       nodeKind
	tag        string
	singleLine bool
	closeTag   bool
	attrs      []Attr
	children   []any
}

// New creates an element node. An empty tag is a programming error.
func New(tag string, opts Options) *Node {
	if tag == "" {
		panic("markup: node requires a tag name")
	}
	return &Node{
		kind:       kindElement,
		tag:        tag,
		singleLine: opts.SingleLine,
		closeTag:   !opts.OmitClose,
		attrs:      append([]Attr(nil), opts.Attrs...),
	}
}

// Comment creates a comment node holding one child per line.
// It renders on a single line when built from more than one line.
func Comment(lines ...string) *Node {
	n := &Node{
		kind:       kindComment,
		singleLine: len(lines) > 1,
		closeTag:   true,
	}
	for _, line := range lines {
		n.AddChild(line)
	}
	return n
}

// Tag returns the node's tag name (empty for comments).
func (n *Node) Tag() string {
	return n.tag
}

// SingleLine reports whether the node renders on one line.
func (n *Node) SingleLine() bool {
	return n.singleLine
}

// Children returns the node's children in order.
func (n *Node) Children() []any {
	return n.children
}

// Attr appends an attribute.
func (n *Node) Attr(a Attr) *Node {
	n.attrs = append(n.attrs, a)
	return n
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child any) any {
	n.children = append(n.children, child)
	return child
}

// Has appends every non-nil child in order and returns n.
func (n *Node) Has(children ...any) *Node {
	for _, c := range children {
		if isNil(c) {
			continue
		}
		n.AddChild(c)
	}
	return n
}

func isNil(c any) bool {
	if c == nil {
		return true
	}
	node, ok := c.(*Node)
	return ok && node == nil
}

// Render writes the node and its subtree.
func (n *Node) Render(w *indent.Writer) error {
	n.render(w, false)
	return w.Err()
}

// String renders the node with a fresh writer.
func (n *Node) String() string {
	var sb strings.Builder
	n.Render(indent.New(&sb))
	return sb.String()
}

// render writes the node. When inline is set the node is part of a
// single-line parent: no indentation and no line breaks are emitted.
func (n *Node) render(w *indent.Writer, inline bool) {
	block := !n.singleLine && !inline

	n.renderOpen(w, inline, block)
	if block {
		w.Increase()
	}
	for _, child := range n.children {
		if node, ok := child.(*Node); ok {
			node.render(w, !block)
			continue
		}
		if block {
			w.StartLine("")
		}
		w.Write(fmt.Sprint(child))
		if block {
			w.EndLine("")
		}
	}
	if block {
		w.Decrease()
	}
	n.renderClose(w, inline, block)
}

func (n *Node) renderOpen(w *indent.Writer, inline, block bool) {
	open := "<!-- "
	if n.kind == kindElement {
		open = "<" + n.tag
	}
	if inline {
		w.Write(open)
	} else {
		w.StartLine(open)
	}
	if n.kind == kindElement {
		for _, a := range n.attrs {
			w.Write(formatAttr(a))
		}
		w.Write(">")
	}
	if block {
		w.EndLine("")
	}
}

func (n *Node) renderClose(w *indent.Writer, inline, block bool) {
	if n.kind == kindComment {
		switch {
		case inline:
			w.Write(" -->")
		case block:
			w.WriteLine("-->")
		default:
			w.EndLine(" -->")
		}
		return
	}

	if n.closeTag {
		if block {
			w.StartLine("")
		}
		w.Write("</" + n.tag + ">")
	}
	if !inline {
		w.EndLine("")
	}
}

func formatAttr(a Attr) string {
	name := strings.ReplaceAll(a.Name, "_hyphen_", "-")
	if name == "clazz" || name == "clasz" {
		name = "class"
	}
	if a.Value == nil {
		return " " + name
	}
	return " " + name + "=" + attrValue(a.Value)
}

// attrValue quotes text values; everything else uses its natural form.
func attrValue(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return fmt.Sprint(v)
}
