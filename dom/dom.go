package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fundsxml/flatxml/ir"
)

var ErrNoDocument = errors.New("no document element")

// Decode reads an XML document into an element tree. Namespaces collapse
// to local names, xmlns declarations, comments, processing instructions
// and directives are dropped, and whitespace-only character data is
// ignored.
func Decode(r io.Reader) (*ir.Node, error) {
	dec := xml.NewDecoder(r)
	var root *ir.Node
	var stack []*ir.Node
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			node := &ir.Node{Name: tok.Name.Local}
			for _, a := range tok.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				node.Attrs = append(node.Attrs, ir.Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple top-level elements", ErrNoDocument)
				}
				root = node
			} else {
				stack[len(stack)-1].Append(node)
			}
			stack = append(stack, node)
		case xml.CharData:
			text := strings.TrimSpace(string(tok))
			if text == "" || len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.Text == "" {
				top.Text = text
			} else {
				top.Text += " " + text
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, ErrNoDocument
	}
	return root, nil
}

// Encode writes the tree as indented XML.
func Encode(node *ir.Node, w io.Writer) error {
	if node == nil {
		return ErrNoDocument
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeNode(enc, node); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// encodeNode emits the token stream for the subtree rooted at node on an
// explicit frame stack; document depth never touches the call stack.
func encodeNode(enc *xml.Encoder, node *ir.Node) error {
	type frame struct {
		node *ir.Node
		post bool
	}
	stack := []frame{{node: node}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := fr.node
		if fr.post {
			end := xml.EndElement{Name: xml.Name{Local: x.Name}}
			if err := enc.EncodeToken(end); err != nil {
				return err
			}
			continue
		}
		start := xml.StartElement{Name: xml.Name{Local: x.Name}}
		for _, a := range x.Attrs {
			start.Attr = append(start.Attr, xml.Attr{
				Name:  xml.Name{Local: a.Name},
				Value: a.Value,
			})
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if text := x.TrimmedText(); text != "" && len(x.Children) == 0 {
			if err := enc.EncodeToken(xml.CharData(text)); err != nil {
				return err
			}
		}
		stack = append(stack, frame{node: x, post: true})
		for i := len(x.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: x.Children[i]})
		}
	}
	return nil
}
