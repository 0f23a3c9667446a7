package sxml

import "fmt"

// NodeKind discriminates the two node shapes in a document tree.
type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindText
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Attr is a single name="value" attribute on an element.
type Attr struct {
	Key   string
	Value string
}

// Position is a source location in the parsed input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is a single node of a document tree: either an element carrying a
// tag, attributes, and ordered children, or a leaf carrying literal text.
// Which fields are meaningful depends on the kind.
type Node struct {
	kind NodeKind

	// Element fields
	tag      string
	attrs    []Attr
	children []*Node

	// Text field
	text string

	// Source location for error reporting; zero for constructed nodes.
	pos Position
}

// Element creates an element node. Duplicate attribute keys resolve to the
// last value given, keeping the position of the first occurrence.
func Element(tag string, attrs ...Attr) *Node {
	n := &Node{kind: KindElement, tag: tag}
	for _, a := range attrs {
		n.SetAttr(a.Key, a.Value)
	}
	return n
}

// Text creates a text leaf node.
func Text(content string) *Node {
	return &Node{kind: KindText, text: content}
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return KindElement
	}
	return n.kind
}

// Tag returns the element tag. Empty for text nodes.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.tag
}

// Text returns the literal content of a text node. Empty for elements; use
// InnerText to collect the text children of an element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Children returns the ordered child nodes.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Attrs returns the attributes in document order.
func (n *Node) Attrs() []Attr {
	if n == nil {
		return nil
	}
	return n.attrs
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute value. A repeated key overwrites the earlier
// value in place, so attribute order is the order keys were first seen.
func (n *Node) SetAttr(key, value string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
}

// Append adds child nodes at the end of the children sequence. No validation
// is performed; appending to a text node is the caller's mistake and will
// simply never be visited by the builder.
func (n *Node) Append(children ...*Node) {
	n.children = append(n.children, children...)
}

// AppendText wraps content in a text leaf and appends it.
func (n *Node) AppendText(content string) {
	n.children = append(n.children, Text(content))
}

// Pos returns the source position this node was parsed at.
func (n *Node) Pos() Position {
	if n == nil {
		return Position{}
	}
	return n.pos
}

// Walk performs a depth-first traversal rooted at n. enter fires before a
// node's children are visited and exit after, for every node including the
// root and including childless ones, so a caller can emit open/close output
// symmetrically. depth starts at 0 and increments per tree level. Children
// are visited in insertion order. Either callback may be nil.
func (n *Node) Walk(enter, exit func(n *Node, depth int)) {
	n.walk(enter, exit, 0)
}

func (n *Node) walk(enter, exit func(n *Node, depth int), depth int) {
	if n == nil {
		return
	}
	if enter != nil {
		enter(n, depth)
	}
	for _, c := range n.children {
		c.walk(enter, exit, depth+1)
	}
	if exit != nil {
		exit(n, depth)
	}
}

// InnerText returns the concatenated content of the direct text children.
// It does not recurse into child elements.
func (n *Node) InnerText() string {
	if n == nil {
		return ""
	}
	var out string
	for _, c := range n.children {
		if c.kind == KindText {
			out += c.text
		}
	}
	return out
}

// Child returns the first direct child element with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.kind == KindElement && c.tag == tag {
			return c
		}
	}
	return nil
}

// Equal reports structural equality: same kind, same tag or text, same
// attribute sequence, and recursively equal children in the same order.
// Source positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindText {
		return n.text == other.text
	}
	if n.tag != other.tag || len(n.attrs) != len(other.attrs) || len(n.children) != len(other.children) {
		return false
	}
	for i, a := range n.attrs {
		if other.attrs[i] != a {
			return false
		}
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a short debug representation of the node.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.kind == KindText {
		return fmt.Sprintf("text(%q)", n.text)
	}
	return fmt.Sprintf("<%s> (%d attrs, %d children)", n.tag, len(n.attrs), len(n.children))
}
