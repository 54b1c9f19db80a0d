// Package libdiff compares two flattened documents entry set against
// entry set. Because every path is unique within a set, the diff is a
// keyed difference: removed paths, added paths, and changed values with a
// character-level decomposition of each change. Typical use is comparing
// two generations of the same fund report.
package libdiff
