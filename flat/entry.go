package flat

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fundsxml/flatxml/ir/spath"
)

// Delim separates the path from the value on a flat line. The path grammar
// rejects it inside names, so it never occurs in a path; it may occur in a
// value, which is why lines split on the first occurrence only.
const Delim = spath.Delim

// Entry is one flat record: the structural path of a leaf's text or of an
// attribute, and the associated value.
type Entry struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}

// Line returns the serialized form of the entry: path, delimiter, value.
func (e Entry) Line() string {
	return e.Path + string(Delim) + e.Value
}

// ParseLine splits a single line into an entry on the first delimiter.
// A line without the delimiter yields a FormatError.
func ParseLine(line string) (Entry, error) {
	i := strings.IndexByte(line, Delim)
	if i == -1 {
		return Entry{}, &FormatError{Text: line}
	}
	return Entry{Path: line[:i], Value: line[i+1:]}, nil
}

// Lines renders entries one per line, each terminated by a newline.
func Lines(entries []Entry) string {
	sb := &strings.Builder{}
	for _, e := range entries {
		sb.WriteString(e.Line())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (e Entry) String() string {
	return fmt.Sprintf("%q=%q", e.Path, e.Value)
}

// ParseLines splits newline-separated flat lines into entries. Empty lines
// are skipped; carriage returns before a newline are dropped. A FormatError
// carries the 1-based number of the offending line.
func ParseLines(d []byte) ([]Entry, error) {
	var res []Entry
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
		e, err := ParseLine(string(line))
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = lineNo
			}
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}
