package libdiff

import (
	"fmt"
	"io"

	"github.com/fundsxml/flatxml/flat"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one path present on both sides with differing values. Diffs
// holds the character-level decomposition of the value change.
type Change struct {
	Path string
	From string
	To   string

	Diffs []diffpatch.Diff
}

// Report is the difference between two flat entry sets, keyed by path.
// Removed follows from-order, Added follows to-order, Changed follows
// from-order.
type Report struct {
	Removed []flat.Entry
	Added   []flat.Entry
	Changed []Change
}

// Make diffs two flattened documents. Paths are unique within each input
// set, so the comparison is a keyed set difference; only changed values
// get a character diff.
func Make(from, to []flat.Entry) *Report {
	toByPath := make(map[string]string, len(to))
	for _, e := range to {
		toByPath[e.Path] = e.Value
	}
	fromByPath := make(map[string]string, len(from))
	for _, e := range from {
		fromByPath[e.Path] = e.Value
	}
	res := &Report{}
	diffCfg := diffpatch.New()
	for _, e := range from {
		toVal, ok := toByPath[e.Path]
		if !ok {
			res.Removed = append(res.Removed, e)
			continue
		}
		if toVal == e.Value {
			continue
		}
		diffs := diffCfg.DiffMain(e.Value, toVal, false)
		diffs = diffCfg.DiffCleanupSemantic(diffs)
		res.Changed = append(res.Changed, Change{
			Path:  e.Path,
			From:  e.Value,
			To:    toVal,
			Diffs: diffs,
		})
	}
	for _, e := range to {
		if _, ok := fromByPath[e.Path]; !ok {
			res.Added = append(res.Added, e)
		}
	}
	return res
}

// Empty reports whether the two sides were identical as entry sets.
func (r *Report) Empty() bool {
	return len(r.Removed) == 0 && len(r.Added) == 0 && len(r.Changed) == 0
}

// Fprint writes the report in a line-oriented form: "-" removed, "+"
// added, "~" changed with both values.
func (r *Report) Fprint(w io.Writer) error {
	for _, e := range r.Removed {
		if _, err := fmt.Fprintf(w, "- %s\n", e.Line()); err != nil {
			return err
		}
	}
	for _, e := range r.Added {
		if _, err := fmt.Fprintf(w, "+ %s\n", e.Line()); err != nil {
			return err
		}
	}
	for i := range r.Changed {
		c := &r.Changed[i]
		_, err := fmt.Fprintf(w, "~ %s%c%s => %s\n", c.Path, flat.Delim, c.From, c.To)
		if err != nil {
			return err
		}
	}
	return nil
}
