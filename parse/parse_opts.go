package parse

type parseOpts struct {
	accumulate bool
}

// ParseOption configures Parse and FromEntries.
type ParseOption func(*parseOpts)

// Accumulate selects the error policy. The default is fail-fast: the first
// violation aborts the call. With accumulate enabled every violation is
// collected and the call returns them joined, which suits bulk validation
// of flat files.
func Accumulate(v bool) ParseOption {
	return func(o *parseOpts) { o.accumulate = v }
}
