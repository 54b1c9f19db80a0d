// Package ir provides the in-memory representation of an element tree.
//
// # Overview
//
// All documents handled by this module (whether parsed from XML text, built
// programmatically, or reconstructed from flat entries) are represented as
// ir.Node trees. A Node carries an element name, an ordered attribute list,
// and either a text value (a leaf) or an ordered list of child elements (a
// container).
//
// The supported subset deliberately excludes namespaces, comments,
// processing instructions and mixed content; see Validate for the rules.
//
// # Creating Nodes
//
//	root := ir.Element("Root",
//	    ir.Leaf("Item", "foo"),
//	    ir.Leaf("Item", "bar"),
//	).WithAttr("id", "9")
//
// # Navigating Nodes
//
// Nodes maintain parent-child links (Parent, ParentIndex). Use Path() for
// the node's structural path within its tree:
//
//	root.Children[1].Path() // "/Root/Item[2]"
//
// Visit walks a subtree in document order on an explicit stack, so very
// deep documents cannot exhaust the call stack.
//
// # Comparison
//
// Compare and Equal provide structural ordering and equality over name,
// attributes, trimmed text and child order. Parent links are ignored.
//
// # Thread Safety
//
// Node trees are not synchronized. Trees are built once and then read;
// share them across goroutines only if no caller mutates them, or Clone
// per goroutine.
//
// # Related Packages
//
//   - github.com/fundsxml/flatxml/ir/spath - structural path grammar
//   - github.com/fundsxml/flatxml/encode - flattens trees to entries
//   - github.com/fundsxml/flatxml/parse - rebuilds trees from entries
//   - github.com/fundsxml/flatxml/dom - XML text to and from trees
package ir
