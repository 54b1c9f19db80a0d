// Package spath provides the structural path grammar shared by the flat
// encoder and the tree builder.
//
// A structural path locates one value inside an element tree by listing the
// steps from the document root:
//
//	/FundsXML/Funds/Fund[2]/Currency      element steps
//	/FundsXML/Funds/Fund[2]/@id           attribute step (always terminal)
//
// The "[k]" suffix is the 1-based sibling-disambiguation index. It appears
// only when more than one sibling under the same parent shares the element
// name, which keeps paths minimal while remaining unambiguous.
//
// # Usage
//
//	p, err := spath.Parse("/Root/Item[2]/@id")
//	p.String()            // "/Root/Item[2]/@id"
//	p.Last().Attr         // true
//	p.Parent().String()   // "/Root/Item[2]"
//
// Prefix strings are built incrementally with Join, Elem and AttrOf; the
// sibling index of a child is computed with SiblingIndex.
//
// # Related Packages
//
//   - github.com/fundsxml/flatxml/ir - element tree representation
//   - github.com/fundsxml/flatxml/encode - tree to flat entries
//   - github.com/fundsxml/flatxml/parse - flat entries to tree
package spath
