package ir

import (
	"errors"
	"fmt"

	"github.com/fundsxml/flatxml/ir/spath"
)

var ErrInvalidNode = errors.New("invalid node")

// Validate checks that the subtree rooted at n satisfies the supported
// document subset: legal element and attribute names, attribute names
// unique per node, and no node carrying both direct text and children.
func (n *Node) Validate() error {
	return n.Visit(func(x *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if !spath.ValidName(x.Name) {
			return false, fmt.Errorf("%w: bad element name %q at %s", ErrInvalidNode, x.Name, x.Path())
		}
		seen := map[string]bool{}
		for i := range x.Attrs {
			a := &x.Attrs[i]
			if !spath.ValidName(a.Name) {
				return false, fmt.Errorf("%w: bad attribute name %q at %s", ErrInvalidNode, a.Name, x.Path())
			}
			if seen[a.Name] {
				return false, fmt.Errorf("%w: duplicate attribute %q at %s", ErrInvalidNode, a.Name, x.Path())
			}
			seen[a.Name] = true
		}
		if x.TrimmedText() != "" && len(x.Children) > 0 {
			return false, fmt.Errorf("%w: mixed content at %s", ErrInvalidNode, x.Path())
		}
		return true, nil
	})
}
