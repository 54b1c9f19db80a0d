package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir"
	"github.com/fundsxml/flatxml/ir/spath"
)

var ErrEncoding = errors.New("encoding error")

// EncState carries encoder configuration; see EncodeOption.
type EncState struct {
	Color func(ColorAttr, string) string
}

// Entries flattens the tree rooted at node into one entry per qualifying
// leaf text value and per attribute, in document (pre-order) traversal
// order. An element none of those witness (no attributes, no children, no
// qualifying text) is kept by an empty-valued entry at its exact path.
// The input tree is never mutated. The only failure mode is an input tree
// outside the supported subset (bad names, duplicate attributes), detected
// as the walk reaches it.
func Entries(node *ir.Node) ([]flat.Entry, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil root", ErrEncoding)
	}
	type frame struct {
		node   *ir.Node
		prefix string
	}
	var res []flat.Entry
	if !spath.ValidName(node.Name) {
		return nil, fmt.Errorf("%w: bad element name %q", ErrEncoding, node.Name)
	}
	stack := []frame{{node: node, prefix: string(spath.Sep) + node.Name}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := fr.node
		if x.IsLeaf() {
			res = append(res, flat.Entry{Path: fr.prefix, Value: x.TrimmedText()})
		} else if len(x.Children) == 0 && len(x.Attrs) == 0 {
			// no other entry witnesses this element; an empty-valued
			// entry at its exact path keeps it reconstructible
			res = append(res, flat.Entry{Path: fr.prefix, Value: ""})
		}
		seen := map[string]bool{}
		for i := range x.Attrs {
			a := &x.Attrs[i]
			if !spath.ValidName(a.Name) {
				return nil, fmt.Errorf("%w: bad attribute name %q at %s", ErrEncoding, a.Name, fr.prefix)
			}
			if seen[a.Name] {
				return nil, fmt.Errorf("%w: duplicate attribute %q at %s", ErrEncoding, a.Name, fr.prefix)
			}
			seen[a.Name] = true
			res = append(res, flat.Entry{Path: spath.AttrOf(fr.prefix, a.Name), Value: a.Value})
		}
		names := make([]string, len(x.Children))
		for i, c := range x.Children {
			names[i] = c.Name
		}
		for i := len(x.Children) - 1; i >= 0; i-- {
			c := x.Children[i]
			if !spath.ValidName(c.Name) {
				return nil, fmt.Errorf("%w: bad element name %q under %s", ErrEncoding, c.Name, fr.prefix)
			}
			step := spath.Elem(c.Name, spath.SiblingIndex(names, i))
			stack = append(stack, frame{node: c, prefix: spath.Join(fr.prefix, step)})
		}
	}
	return res, nil
}

// Encode flattens node and writes the entries to w, one line per entry.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	entries, err := Entries(node)
	if err != nil {
		return err
	}
	return EncodeEntries(entries, w, opts...)
}

// EncodeEntries writes already-flattened entries to w, one line per entry,
// honoring color options.
func EncodeEntries(entries []flat.Entry, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	for _, e := range entries {
		line := e.Line()
		if es.Color != nil {
			line = renderLine(e, es.Color)
		}
		if _, err := w.Write([]byte(line + "\n")); err != nil {
			return err
		}
	}
	return nil
}
