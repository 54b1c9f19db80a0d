package ir

import (
	"strings"

	"github.com/fundsxml/flatxml/ir/spath"
)

// Attr is a named attribute on an element. Names are unique within a node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a document tree. A node carries either a text
// value and no children (a leaf) or an ordered list of child elements (a
// container), plus zero or more attributes. Mixed content is out of scope;
// a node holding both text and children is tolerated structurally but is
// never treated as a leaf when any descendant also carries text.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node

	Parent      *Node
	ParentIndex int
}

// Element returns a container node with the given children attached in
// order.
func Element(name string, children ...*Node) *Node {
	res := &Node{Name: name}
	for _, c := range children {
		res.Append(c)
	}
	return res
}

// Leaf returns a text-carrying node.
func Leaf(name, text string) *Node {
	return &Node{Name: name, Text: text}
}

// WithAttr appends an attribute and returns the node for chaining.
func (n *Node) WithAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Append attaches child as the last child of n and maintains parent links.
func (n *Node) Append(child *Node) {
	child.Parent = n
	child.ParentIndex = len(n.Children)
	n.Children = append(n.Children, child)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// Get returns the first child with the given element name, or nil.
func (n *Node) Get(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Clone returns a deep copy of n with a nil parent.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	res.Parent = nil
	res.ParentIndex = 0
	return res
}

// CloneTo deep-copies n into dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	} else {
		dst.Attrs = nil
	}
	if n.Children == nil {
		dst.Children = nil
		return dst
	}
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := &Node{}
		c.CloneTo(cc)
		cc.Parent = dst
		cc.ParentIndex = i
		dst.Children[i] = cc
	}
	return dst
}

// TrimmedText returns the node's direct text with surrounding whitespace
// removed. Whitespace-only text is treated as absent.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// IsLeaf reports whether n qualifies as a leaf for flat encoding: it
// carries non-whitespace direct text and no descendant element carries
// non-whitespace text of its own. The descendant condition keeps
// mixed-content ancestors from being misidentified as leaves.
func (n *Node) IsLeaf() bool {
	if n.TrimmedText() == "" {
		return false
	}
	stack := make([]*Node, len(n.Children))
	copy(stack, n.Children)
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x.TrimmedText() != "" {
			return false
		}
		stack = append(stack, x.Children...)
	}
	return true
}

// Visit walks the subtree rooted at n in document order without using the
// call stack. f is called before descending (isPost false) and after the
// subtree is done (isPost true); returning false from the pre call skips
// the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	type frame struct {
		node *Node
		post bool
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.post {
			if _, err := f(fr.node, true); err != nil {
				return err
			}
			continue
		}
		dive, err := f(fr.node, false)
		if err != nil {
			return err
		}
		stack = append(stack, frame{node: fr.node, post: true})
		if !dive {
			continue
		}
		for i := len(fr.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: fr.node.Children[i]})
		}
	}
	return nil
}

// Path returns the structural path of n within its tree, computed from
// parent links and sibling disambiguation indices.
func (n *Node) Path() string {
	var steps []string
	for x := n; x != nil; x = x.Parent {
		idx := 0
		if p := x.Parent; p != nil {
			idx = spath.SiblingIndex(childNames(p), x.ParentIndex)
		}
		steps = append(steps, spath.Elem(x.Name, idx))
	}
	sb := &strings.Builder{}
	for i := len(steps) - 1; i >= 0; i-- {
		sb.WriteByte(spath.Sep)
		sb.WriteString(steps[i])
	}
	return sb.String()
}

func childNames(n *Node) []string {
	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Name
	}
	return names
}
