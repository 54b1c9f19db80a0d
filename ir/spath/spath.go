package spath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPath is wrapped by all path parse errors.
var ErrPath = errors.New("invalid structural path")

// Path represents one step of a structural path as a linked list from the
// document root. An element step is "Name" or "Name[k]" where k is the
// 1-based index among same-named siblings, present only when more than one
// such sibling exists. An attribute step is "@name" and is always terminal.
type Path struct {
	Name  string
	Index int  // 1-based sibling index, 0 when absent
	Attr  bool // attribute step, terminal
	Next  *Path
}

// String returns the path string, e.g. "/Root/Item[2]/@id".
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	sb := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		sb.WriteByte(Sep)
		sb.WriteString(x.SegmentString())
	}
	return sb.String()
}

// SegmentString returns the canonical string of this single step without the
// leading separator.
// Examples:
//   - Path{Name: "Fund"} → "Fund"
//   - Path{Name: "Item", Index: 2} → "Item[2]"
//   - Path{Name: "id", Attr: true} → "@id"
func (p *Path) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Attr {
		return string(AttrMark) + p.Name
	}
	if p.Index > 0 {
		return p.Name + "[" + strconv.Itoa(p.Index) + "]"
	}
	return p.Name
}

// Last returns the terminal step of the path.
func (p *Path) Last() *Path {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Depth returns the number of steps in the path.
func (p *Path) Depth() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Parent returns a copy of the path without its last step, or nil if the
// path has at most one step.
func (p *Path) Parent() *Path {
	if p == nil || p.Next == nil {
		return nil
	}
	res := &Path{}
	dst := res
	for x := p; x.Next != nil; x = x.Next {
		dst.Name = x.Name
		dst.Index = x.Index
		dst.Attr = x.Attr
		if x.Next.Next != nil {
			dst.Next = &Path{}
			dst = dst.Next
		}
	}
	return res
}

// Compare compares two paths step by step: by name, then index, with
// attribute steps ordering after element steps of the same name. A path
// that is a prefix of another orders first.
func (p *Path) Compare(other *Path) int {
	a, b := p, other
	for a != nil && b != nil {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if a.Index != b.Index {
			if a.Index < b.Index {
				return -1
			}
			return 1
		}
		if a.Attr != b.Attr {
			if b.Attr {
				return -1
			}
			return 1
		}
		a, b = a.Next, b.Next
	}
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = *pp
	return nil
}

// Parse parses a structural path string such as "/Root/Item[2]/@id".
// The path must begin with the separator and contain at least one element
// step. An attribute step may only appear last.
func Parse(s string) (*Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrPath)
	}
	if s[0] != Sep {
		return nil, fmt.Errorf("%w: %q does not start with %q", ErrPath, s, string(Sep))
	}
	segs := strings.Split(s[1:], string(Sep))
	root := &Path{}
	x := root
	for i, seg := range segs {
		if i > 0 {
			x.Next = &Path{}
			x = x.Next
		}
		if err := parseSegment(seg, x); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrPath, s, err)
		}
		if x.Attr && i != len(segs)-1 {
			return nil, fmt.Errorf("%w: %q: attribute step not terminal", ErrPath, s)
		}
	}
	if root.Attr {
		return nil, fmt.Errorf("%w: %q: attribute step has no owning element", ErrPath, s)
	}
	return root, nil
}

func parseSegment(seg string, dst *Path) error {
	if seg == "" {
		return fmt.Errorf("empty step")
	}
	if seg[0] == AttrMark {
		name := seg[1:]
		if !ValidName(name) {
			return fmt.Errorf("bad attribute name %q", name)
		}
		dst.Name = name
		dst.Attr = true
		return nil
	}
	name := seg
	if i := strings.IndexByte(seg, '['); i != -1 {
		if seg[len(seg)-1] != ']' {
			return fmt.Errorf("unclosed index in %q", seg)
		}
		idx, err := strconv.Atoi(seg[i+1 : len(seg)-1])
		if err != nil || idx < 1 {
			return fmt.Errorf("bad sibling index in %q", seg)
		}
		dst.Index = idx
		name = seg[:i]
	}
	if !ValidName(name) {
		return fmt.Errorf("bad element name %q", name)
	}
	dst.Name = name
	return nil
}

// ValidName reports whether name is usable as an element or attribute name
// in a structural path. The excluded bytes are the path grammar's own
// metacharacters and the flat-line delimiter, which keeps every produced
// path free of the delimiter.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == AttrMark {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c == Sep, c == Delim, c == '[', c == ']':
			return false
		case c < 0x20:
			return false
		}
	}
	return true
}
