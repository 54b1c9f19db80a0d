// Package encode flattens an element tree into flat (path, value) entries.
//
// Entries walks the tree in document order on an explicit work stack (deep
// documents cannot exhaust the call stack) and emits:
//
//   - one entry per qualifying leaf: an element with non-whitespace direct
//     text and no descendant element carrying non-whitespace text itself;
//   - one entry per attribute on any element, leaf or container, including
//     attributes on the document root;
//   - one empty-valued entry per element witnessed by nothing else: no
//     attributes, no children, no qualifying text. Empty elements would
//     otherwise vanish from the entry set and could not be rebuilt.
//
// Containers with children produce no entry of their own; whitespace-only
// text is treated as absent. Sibling-disambiguation indices are appended only
// where more than one same-named sibling exists, so every emitted path is
// unique across the entry set.
//
// # Usage
//
//	entries, err := encode.Entries(root)
//	err = encode.Encode(root, os.Stdout)
//	err = encode.Encode(root, tty, encode.EncodeColors(encode.NewColors()))
//
// The encoder never mutates its input and keeps no state between calls;
// concurrent calls need no coordination.
//
// # Related Packages
//
//   - github.com/fundsxml/flatxml/parse - the inverse transform
//   - github.com/fundsxml/flatxml/flat - entry and line format
package encode
