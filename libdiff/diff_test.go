package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fundsxml/flatxml/flat"
)

func TestMake(t *testing.T) {
	from := []flat.Entry{
		{Path: "/Root/Fund[1]/Name", Value: "Alpha"},
		{Path: "/Root/Fund[1]/Currency", Value: "EUR"},
		{Path: "/Root/Fund[2]/Name", Value: "Beta"},
	}
	to := []flat.Entry{
		{Path: "/Root/Fund[1]/Name", Value: "Alpha Global"},
		{Path: "/Root/Fund[1]/Currency", Value: "EUR"},
		{Path: "/Root/Fund[1]/@id", Value: "F-1"},
	}
	r := Make(from, to)
	if r.Empty() {
		t.Fatal("report unexpectedly empty")
	}
	if len(r.Removed) != 1 || r.Removed[0].Path != "/Root/Fund[2]/Name" {
		t.Errorf("Removed = %+v", r.Removed)
	}
	if len(r.Added) != 1 || r.Added[0].Path != "/Root/Fund[1]/@id" {
		t.Errorf("Added = %+v", r.Added)
	}
	if len(r.Changed) != 1 {
		t.Fatalf("Changed = %+v", r.Changed)
	}
	c := r.Changed[0]
	if c.Path != "/Root/Fund[1]/Name" || c.From != "Alpha" || c.To != "Alpha Global" {
		t.Errorf("Changed[0] = %+v", c)
	}
	if len(c.Diffs) == 0 {
		t.Error("no character diff for changed value")
	}
}

func TestMakeEqual(t *testing.T) {
	entries := []flat.Entry{
		{Path: "/Root/A", Value: "1"},
		{Path: "/Root/B", Value: "2"},
	}
	if r := Make(entries, entries); !r.Empty() {
		t.Errorf("identical sides produced %+v", r)
	}
}

func TestMakeOrderIndependent(t *testing.T) {
	from := []flat.Entry{
		{Path: "/Root/A", Value: "1"},
		{Path: "/Root/B", Value: "2"},
	}
	to := []flat.Entry{
		{Path: "/Root/B", Value: "2"},
		{Path: "/Root/A", Value: "1"},
	}
	if r := Make(from, to); !r.Empty() {
		t.Errorf("reordered sides produced %+v", r)
	}
}

func TestFprint(t *testing.T) {
	r := Make(
		[]flat.Entry{
			{Path: "/Root/A", Value: "1"},
			{Path: "/Root/C", Value: "old"},
		},
		[]flat.Entry{
			{Path: "/Root/B", Value: "2"},
			{Path: "/Root/C", Value: "new"},
		},
	)
	buf := bytes.NewBuffer(nil)
	if err := r.Fprint(buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"- /Root/A|1",
		"+ /Root/B|2",
		"~ /Root/C|old => new",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Fprint = %q, want %q", buf.String(), want)
	}
}
