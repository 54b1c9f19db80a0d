// Package dom is the XML boundary of the module: it loads an XML document
// (typically a fund-reporting file) into an ir.Node tree and serializes a
// tree back to indented XML.
//
// Only the supported document subset survives the trip: namespaces are
// collapsed to local names, comments, processing instructions and
// whitespace-only text are dropped, and attribute insertion order is kept
// as encountered. The codec packages (encode, parse) never touch XML text
// themselves; this package is their harness boundary.
package dom
