package ir

import "strings"

// Compare orders two trees structurally: by element name, then attributes
// (pairwise name and value), then trimmed text, then children pairwise with
// shorter child lists ordering first. Parent links do not participate.
func Compare(a, b *Node) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareAttrs(a.Attrs, b.Attrs); c != 0 {
		return c
	}
	if c := strings.Compare(a.TrimmedText(), b.TrimmedText()); c != 0 {
		return c
	}
	n := min(len(a.Children), len(b.Children))
	for i := 0; i < n; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.Children) < len(b.Children):
		return -1
	case len(a.Children) > len(b.Children):
		return 1
	}
	return 0
}

// Equal reports structural equality: same element names and order, same
// attributes, same leaf text.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareAttrs(a, b []Attr) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := strings.Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
