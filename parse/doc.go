// Package parse reconstructs an element tree from flat (path, value)
// entries.
//
// The builder accepts entries in any order. As entries arrive it indexes
// every path prefix once (a map from prefix to a child-group index), so
// reconstruction is near-linear in the number of entries; no step rescans
// the entry list.
//
// Reconstruction rules, per path prefix:
//
//   - an entry whose path equals the prefix exactly becomes the element's
//     text and marks it a leaf; an empty value yields an empty element;
//   - entries one attribute step below become the element's attributes, in
//     first-seen order;
//   - entries one element step below are grouped by exact child path to
//     enumerate child instances; children are ordered by first-seen order
//     of distinct names, instances within a name by sibling index.
//
// # Failures
//
// All failures carry the flat package taxonomy:
//
//   - flat.ErrFormat - a line without the delimiter, or an unparseable path
//   - flat.ErrStructure - root mismatch, a leaf path that also has child
//     entries, or inconsistent sibling indexing
//   - flat.ErrConflict - differing values asserted at one identical path
//   - flat.ErrEmptyInput - no entries at all
//
// The default policy is fail-fast. Accumulate(true) collects every
// violation and returns them joined; no partial tree is ever returned.
//
// # Round trip
//
// For any tree T in the supported subset, FromEntries(encode.Entries(T))
// is structurally equal to T, and re-encoding the result yields the same
// entry set.
package parse
