package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir/spath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled boolean predicate over flat entries.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles an expr predicate. The environment per entry is:
//
//	path  string  full structural path
//	value string  entry value
//	name  string  last path step's element or attribute name
//	depth int     number of path steps
//	index int     sibling index of the last element step (0 when absent)
//	attr  bool    whether the entry is an attribute entry
//
// plus the functions number(value) and segments(path).
func Compile(src string) (*Query, error) {
	opts := append(exprOpts(),
		expr.Env(env(flat.Entry{})),
		expr.AsBool(),
	)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("bad query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("number", func(params ...any) (any, error) {
			v, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("number expects a string, got %T", params[0])
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
			new(func(string) float64)),
		expr.Function("segments", func(params ...any) (any, error) {
			p, err := spath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			var segs []string
			for x := p; x != nil; x = x.Next {
				segs = append(segs, x.SegmentString())
			}
			return segs, nil
		},
			new(func(string) []string)),
	}
}

func env(e flat.Entry) map[string]any {
	res := map[string]any{
		"path":  e.Path,
		"value": e.Value,
		"name":  "",
		"depth": 0,
		"index": 0,
		"attr":  false,
	}
	p, err := spath.Parse(e.Path)
	if err != nil {
		return res
	}
	last := p.Last()
	res["name"] = last.Name
	res["depth"] = p.Depth()
	res["attr"] = last.Attr
	if last.Attr {
		if pp := p.Parent(); pp != nil {
			res["index"] = pp.Last().Index
		}
	} else {
		res["index"] = last.Index
	}
	return res
}

// Match evaluates the predicate against one entry.
func (q *Query) Match(e flat.Entry) (bool, error) {
	res, err := expr.Run(q.prg, env(e))
	if err != nil {
		return false, fmt.Errorf("query %q on %s: %w", q.src, e.Path, err)
	}
	return res.(bool), nil
}

// Filter appends the entries matching the predicate to dst and returns it.
func (q *Query) Filter(dst, entries []flat.Entry) ([]flat.Entry, error) {
	for _, e := range entries {
		ok, err := q.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			dst = append(dst, e)
		}
	}
	return dst, nil
}

func (q *Query) String() string { return q.src }
