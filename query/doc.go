// Package query filters flat entry sets with compiled expr predicates.
//
//	q, err := query.Compile(`hasPrefix(path, "/FundsXML/Funds") && number(value) > 1000`)
//	hits, err := q.Filter(nil, entries)
//
// The predicate sees path, value, name, depth, index and attr per entry;
// number() parses a value as a float and segments() splits a path into its
// step strings. Queries are compiled once and are safe for reuse across
// entry sets.
package query
