package flat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormat is wrapped by errors for lines that cannot be split into
	// a (path, value) pair or whose path does not parse.
	ErrFormat = errors.New("malformed flat entry")
	// ErrStructure is wrapped by errors for entries whose valid path is
	// inconsistent with the rest of the entry set.
	ErrStructure = errors.New("inconsistent flat entries")
	// ErrConflict is wrapped by errors for entries asserting different
	// values at the identical path.
	ErrConflict = errors.New("conflicting flat entries")
	// ErrEmptyInput reports an entry sequence with no entries at all.
	ErrEmptyInput = errors.New("no flat entries")
)

// FormatError reports a line that is not parseable as an entry. Line is
// 1-based and 0 when unknown.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %q", ErrFormat, e.Line, e.Text)
	}
	return fmt.Sprintf("%v: %q", ErrFormat, e.Text)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// StructureError reports an entry whose path cannot be reconciled with the
// tree implied by the other entries.
type StructureError struct {
	Path   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrStructure, e.Path, e.Reason)
}

func (e *StructureError) Unwrap() error { return ErrStructure }

// ConflictError reports two or more entries asserting differing values at
// the identical path.
type ConflictError struct {
	Path   string
	Values []string
}

func (e *ConflictError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConflict, e.Path, strings.Join(quoted, " vs "))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
