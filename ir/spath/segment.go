package spath

import "strconv"

const (
	// Sep separates steps in a structural path.
	Sep = '/'
	// AttrMark introduces an attribute step.
	AttrMark = '@'
	// Delim separates a path from its value on a flat line. It is listed
	// here because the path grammar must reject it inside names so that
	// flat lines always split unambiguously on the first occurrence.
	Delim = '|'
)

// Elem returns the step string for an element with the given sibling index.
// index 0 means the element is unique among its same-named siblings and no
// index suffix is produced.
func Elem(name string, index int) string {
	if index > 0 {
		return name + "[" + strconv.Itoa(index) + "]"
	}
	return name
}

// Join appends a step string to a path prefix.
func Join(prefix, step string) string {
	return prefix + string(Sep) + step
}

// AttrOf returns the path of the named attribute on the element at prefix.
func AttrOf(prefix, name string) string {
	return prefix + string(Sep) + string(AttrMark) + name
}

// SiblingIndex computes the 1-based disambiguation index of the i-th entry
// of names among entries sharing the same name. It returns 0 when the name
// is unique in names, in which case no index suffix belongs in the path.
// The index is a structural property: the count of preceding same-named
// entries plus one.
func SiblingIndex(names []string, i int) int {
	total := 0
	before := 0
	for j, name := range names {
		if name != names[i] {
			continue
		}
		total++
		if j < i {
			before++
		}
	}
	if total <= 1 {
		return 0
	}
	return before + 1
}
