package parse

import (
	"sort"
	"testing"

	"github.com/fundsxml/flatxml/encode"
	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir"

	"github.com/google/go-cmp/cmp"
)

func fundReport() *ir.Node {
	return ir.Element("FundsXML",
		ir.Element("ControlData",
			ir.Leaf("UniqueDocumentID", "DOC-2026-08"),
			ir.Leaf("DocumentGenerated", "2026-08-24"),
		),
		ir.Element("Funds",
			ir.Element("Fund",
				ir.Leaf("Name", "Alpha Global Equity"),
				ir.Leaf("Currency", "EUR"),
				ir.Element("Positions",
					ir.Element("Position",
						ir.Leaf("ISIN", "LU0000000001"),
						ir.Leaf("Amount", "125000.50"),
					).WithAttr("type", "equity"),
					ir.Element("Position",
						ir.Leaf("ISIN", "LU0000000002"),
						ir.Leaf("Amount", "98000.00"),
					).WithAttr("type", "bond"),
				),
			).WithAttr("id", "F-1"),
			ir.Element("Fund",
				ir.Leaf("Name", "Beta Money Market"),
				ir.Leaf("Currency", "USD"),
				ir.Element("Positions"),
			).WithAttr("id", "F-2"),
		),
	).WithAttr("version", "4.2")
}

func TestRoundTrip(t *testing.T) {
	orig := fundReport()
	entries, err := encode.Entries(orig)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := FromEntries(entries)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, rebuilt) {
		t.Error("build(encode(T)) differs structurally from T")
	}
}

func TestRoundTripThroughLines(t *testing.T) {
	orig := fundReport()
	entries, err := encode.Entries(orig)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := Parse([]byte(flat.Lines(entries)))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, rebuilt) {
		t.Error("line round trip differs structurally")
	}
}

func TestIdempotentReEncode(t *testing.T) {
	orig := fundReport()
	first, err := encode.Entries(orig)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := FromEntries(first)
	if err != nil {
		t.Fatal(err)
	}
	second, err := encode.Entries(rebuilt)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sorted(first), sorted(second)); diff != "" {
		t.Errorf("encode(build(encode(T))) != encode(T) as a set (-first +second):\n%s", diff)
	}
}

func TestRoundTripShuffledInput(t *testing.T) {
	orig := fundReport()
	entries, err := encode.Entries(orig)
	if err != nil {
		t.Fatal(err)
	}
	shuffled := make([]flat.Entry, len(entries))
	copy(shuffled, entries)
	for i, j := 0, len(shuffled)-1; i < j; i, j = i+1, j-1 {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	rebuilt, err := FromEntries(shuffled)
	if err != nil {
		t.Fatal(err)
	}
	second, err := encode.Entries(rebuilt)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sorted(entries), sorted(second)); diff != "" {
		t.Errorf("shuffled round trip changed the entry set:\n%s", diff)
	}
}

func TestRoundTripEmptyElements(t *testing.T) {
	orig := ir.Element("Root",
		ir.Element("Group",
			ir.Element("Empty"),
		),
		ir.Leaf("Blank", "  \n"),
		ir.Leaf("Full", "v"),
	)
	entries, err := encode.Entries(orig)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := FromEntries(entries)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, rebuilt) {
		t.Error("empty elements lost in round trip")
	}
	if rebuilt.Get("Group").Get("Empty") == nil {
		t.Error("nested empty container not rebuilt")
	}
}

func sorted(entries []flat.Entry) []flat.Entry {
	res := make([]flat.Entry, len(entries))
	copy(res, entries)
	sort.Slice(res, func(i, j int) bool { return res[i].Path < res[j].Path })
	return res
}
