package parse

import (
	"bytes"
	"errors"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir"
)

// Parse reconstructs an element tree from flat lines, one entry per line,
// in any order. Empty lines are skipped. On failure it returns an error
// from the flat taxonomy: ErrFormat, ErrStructure, ErrConflict or
// ErrEmptyInput. With Accumulate(true) all violations are collected and
// joined instead of stopping at the first.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	b := newBuilder(po)
	lineNo := 0
	for len(d) > 0 {
		lineNo++
		line := d
		if i := bytes.IndexByte(d, '\n'); i != -1 {
			line = d[:i]
			d = d[i+1:]
		} else {
			d = nil
		}
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}
		e, err := flat.ParseLine(string(line))
		if err != nil {
			var fe *flat.FormatError
			if errors.As(err, &fe) {
				fe.Line = lineNo
			}
			if err = b.report(err); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.add(e, lineNo); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

// FromEntries reconstructs an element tree from entries in any order.
// See Parse for the failure taxonomy.
func FromEntries(entries []flat.Entry, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	b := newBuilder(po)
	for _, e := range entries {
		if err := b.add(e, 0); err != nil {
			return nil, err
		}
	}
	return b.finish()
}
