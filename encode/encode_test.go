package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir"

	"github.com/google/go-cmp/cmp"
)

func TestEntries(t *testing.T) {
	mixed := &ir.Node{Name: "Mixed", Text: "direct"}
	mixed.Append(ir.Leaf("Inner", "below"))

	tests := []struct {
		name string
		node *ir.Node
		want []flat.Entry
	}{
		{
			name: "minimal repeated siblings",
			node: ir.Element("Root",
				ir.Leaf("Item", "foo"),
				ir.Leaf("Item", "bar"),
			),
			want: []flat.Entry{
				{Path: "/Root/Item[1]", Value: "foo"},
				{Path: "/Root/Item[2]", Value: "bar"},
			},
		},
		{
			name: "attribute on root and leaf",
			node: ir.Element("Root",
				ir.Leaf("Leaf", "x"),
			).WithAttr("id", "9"),
			want: []flat.Entry{
				{Path: "/Root/@id", Value: "9"},
				{Path: "/Root/Leaf", Value: "x"},
			},
		},
		{
			name: "sibling disambiguation only where needed",
			node: ir.Element("Root",
				ir.Leaf("A", "1"),
				ir.Leaf("A", "2"),
				ir.Leaf("B", "3"),
			),
			want: []flat.Entry{
				{Path: "/Root/A[1]", Value: "1"},
				{Path: "/Root/A[2]", Value: "2"},
				{Path: "/Root/B", Value: "3"},
			},
		},
		{
			name: "container produces no entry",
			node: ir.Element("Root",
				ir.Element("Funds",
					ir.Leaf("Fund", "Alpha"),
				),
			),
			want: []flat.Entry{
				{Path: "/Root/Funds/Fund", Value: "Alpha"},
			},
		},
		{
			name: "whitespace-only text is absent but the element is kept",
			node: ir.Element("Root",
				ir.Leaf("Empty", "  \n\t"),
				ir.Leaf("Full", " v "),
			),
			want: []flat.Entry{
				{Path: "/Root/Empty", Value: ""},
				{Path: "/Root/Full", Value: "v"},
			},
		},
		{
			name: "mixed-content ancestor is not a leaf",
			node: ir.Element("Root", mixed),
			want: []flat.Entry{
				{Path: "/Root/Mixed/Inner", Value: "below"},
			},
		},
		{
			name: "attribute on container",
			node: ir.Element("Root",
				ir.Element("Funds",
					ir.Leaf("Fund", "Alpha"),
				).WithAttr("count", "1"),
			),
			want: []flat.Entry{
				{Path: "/Root/Funds/@count", Value: "1"},
				{Path: "/Root/Funds/Fund", Value: "Alpha"},
			},
		},
		{
			name: "empty container keeps an empty-valued entry",
			node: ir.Element("Root", ir.Element("Empty")),
			want: []flat.Entry{
				{Path: "/Root/Empty", Value: ""},
			},
		},
		{
			name: "bare root",
			node: ir.Element("Root"),
			want: []flat.Entry{
				{Path: "/Root", Value: ""},
			},
		},
		{
			name: "attributes witness an empty element",
			node: ir.Element("Root",
				ir.Element("Empty").WithAttr("id", "9"),
			),
			want: []flat.Entry{
				{Path: "/Root/Empty/@id", Value: "9"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entries(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntriesDocumentOrder(t *testing.T) {
	node := ir.Element("Root",
		ir.Element("Funds",
			ir.Element("Fund",
				ir.Leaf("Name", "Alpha"),
				ir.Leaf("Currency", "EUR"),
			).WithAttr("id", "F1"),
			ir.Element("Fund",
				ir.Leaf("Name", "Beta"),
			).WithAttr("id", "F2"),
		),
	)
	got, err := Entries(node)
	if err != nil {
		t.Fatal(err)
	}
	want := []flat.Entry{
		{Path: "/Root/Funds/Fund[1]/@id", Value: "F1"},
		{Path: "/Root/Funds/Fund[1]/Name", Value: "Alpha"},
		{Path: "/Root/Funds/Fund[1]/Currency", Value: "EUR"},
		{Path: "/Root/Funds/Fund[2]/@id", Value: "F2"},
		{Path: "/Root/Funds/Fund[2]/Name", Value: "Beta"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesUniquePaths(t *testing.T) {
	node := ir.Element("Root",
		ir.Element("Fund",
			ir.Leaf("Name", "Alpha"),
			ir.Leaf("Name", "AlphaBis"),
		),
		ir.Element("Fund",
			ir.Leaf("Name", "Beta"),
		),
	)
	entries, err := Entries(node)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Path] {
			t.Errorf("duplicate path %q", e.Path)
		}
		seen[e.Path] = true
	}
}

func TestEntriesDoesNotMutate(t *testing.T) {
	node := ir.Element("Root",
		ir.Leaf("Item", "  foo  "),
		ir.Leaf("Item", "bar"),
	).WithAttr("id", "9")
	before := node.Clone()
	if _, err := Entries(node); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(before, node) {
		t.Error("input tree mutated by Entries")
	}
	if node.Children[0].Text != "  foo  " {
		t.Error("leaf text trimmed in place")
	}
}

func TestEntriesDeepTree(t *testing.T) {
	root := ir.Element("Root")
	cur := root
	for i := 0; i < 200000; i++ {
		next := ir.Element("N")
		cur.Append(next)
		cur = next
	}
	cur.Append(ir.Leaf("Leaf", "bottom"))
	entries, err := Entries(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !strings.HasSuffix(entries[0].Path, "/N/Leaf") {
		t.Errorf("unexpected path tail: %q", entries[0].Path)
	}
}

func TestEntriesRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"nil root", nil},
		{"empty root name", ir.Element("")},
		{"delimiter in name", ir.Element("Root", ir.Leaf("a|b", "x"))},
		{"separator in attr", ir.Element("Root").WithAttr("a/b", "x")},
		{"duplicate attr", ir.Element("Root").WithAttr("id", "1").WithAttr("id", "2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Entries(tt.node); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEncodeLines(t *testing.T) {
	node := ir.Element("Root",
		ir.Leaf("Item", "foo"),
		ir.Leaf("Item", "bar"),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	want := "/Root/Item[1]|foo\n/Root/Item[2]|bar\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestEncodeEntriesColored(t *testing.T) {
	entries := []flat.Entry{{Path: "/Root/Item[2]/@id", Value: "9"}}
	marks := map[ColorAttr]string{
		NameColor:  "N",
		IndexColor: "I",
		AttrColor:  "A",
		SepColor:   "S",
		ValueColor: "V",
	}
	colors := &Colors{
		Default: func(f string, args ...any) string { return f },
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	for attr, mark := range marks {
		m := mark
		colors.Map[attr] = func(f string, args ...any) string {
			s := f
			if len(args) == 1 {
				s = args[0].(string)
			}
			return m + "(" + s + ")"
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := EncodeEntries(entries, buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	want := "S(/)N(Root)S(/)N(Item)I([2])S(/)A(@id)S(|)V(9)\n"
	if buf.String() != want {
		t.Errorf("colored line = %q, want %q", buf.String(), want)
	}
}
