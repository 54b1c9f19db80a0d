package parse

import (
	"errors"
	"fmt"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir"
	"github.com/fundsxml/flatxml/ir/spath"
)

// rec is one prospective element, keyed by its exact path prefix. The
// builder indexes every prefix once as entries arrive, so reconstruction
// never rescans the entry list.
type rec struct {
	prefix  string
	name    string
	index   int
	hasText bool
	text    string

	attrs   []ir.Attr
	attrIdx map[string]int

	names  []string // first-seen order of distinct child names
	groups map[string]map[int]*rec
}

func newRec(prefix, name string, index int) *rec {
	return &rec{prefix: prefix, name: name, index: index}
}

func (r *rec) child(step *spath.Path) *rec {
	if r.groups == nil {
		r.groups = map[string]map[int]*rec{}
	}
	group, ok := r.groups[step.Name]
	if !ok {
		group = map[int]*rec{}
		r.groups[step.Name] = group
		r.names = append(r.names, step.Name)
	}
	c, ok := group[step.Index]
	if !ok {
		c = newRec(spath.Join(r.prefix, step.SegmentString()), step.Name, step.Index)
		group[step.Index] = c
	}
	return c
}

type builder struct {
	opts *parseOpts
	root *rec
	errs []error
}

func newBuilder(opts *parseOpts) *builder {
	return &builder{opts: opts}
}

// report returns err in fail-fast mode and records it in accumulate mode.
func (b *builder) report(err error) error {
	if !b.opts.accumulate {
		return err
	}
	b.errs = append(b.errs, err)
	return nil
}

// add indexes one entry. Errors are subject to the report policy.
func (b *builder) add(e flat.Entry, lineNo int) error {
	p, err := spath.Parse(e.Path)
	if err != nil {
		if lineNo > 0 {
			return b.report(fmt.Errorf("%w: line %d: %v", flat.ErrFormat, lineNo, err))
		}
		return b.report(fmt.Errorf("%w: %v", flat.ErrFormat, err))
	}
	if p.Index > 0 {
		return b.report(&flat.StructureError{
			Path:   e.Path,
			Reason: "document root cannot carry a sibling index",
		})
	}
	if b.root == nil {
		b.root = newRec(string(spath.Sep)+p.Name, p.Name, 0)
	} else if b.root.name != p.Name {
		return b.report(&flat.StructureError{
			Path:   e.Path,
			Reason: fmt.Sprintf("root %q does not match %q", p.Name, b.root.name),
		})
	}
	cur := b.root
	for x := p.Next; x != nil; x = x.Next {
		if x.Attr {
			return b.setAttr(cur, e, x.Name)
		}
		cur = cur.child(x)
	}
	return b.setText(cur, e)
}

func (b *builder) setAttr(r *rec, e flat.Entry, name string) error {
	if r.attrIdx == nil {
		r.attrIdx = map[string]int{}
	}
	if i, ok := r.attrIdx[name]; ok {
		if r.attrs[i].Value != e.Value {
			return b.report(&flat.ConflictError{
				Path:   e.Path,
				Values: []string{r.attrs[i].Value, e.Value},
			})
		}
		return nil
	}
	r.attrIdx[name] = len(r.attrs)
	r.attrs = append(r.attrs, ir.Attr{Name: name, Value: e.Value})
	return nil
}

func (b *builder) setText(r *rec, e flat.Entry) error {
	if r.hasText {
		if r.text != e.Value {
			return b.report(&flat.ConflictError{
				Path:   e.Path,
				Values: []string{r.text, e.Value},
			})
		}
		return nil
	}
	r.hasText = true
	r.text = e.Value
	return nil
}

// finish validates the indexed structure and materializes the tree.
func (b *builder) finish() (*ir.Node, error) {
	if b.root == nil {
		if err := b.report(flat.ErrEmptyInput); err != nil {
			return nil, err
		}
		return nil, errors.Join(b.errs...)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.materialize(), nil
}

func (b *builder) validate() error {
	stack := []*rec{b.root}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.hasText && len(r.names) > 0 {
			err := b.report(&flat.StructureError{
				Path:   r.prefix,
				Reason: "leaf path also has child entries",
			})
			if err != nil {
				return err
			}
		}
		for _, name := range r.names {
			group := r.groups[name]
			if err := b.validateGroup(r, name, group); err != nil {
				return err
			}
			for _, c := range group {
				stack = append(stack, c)
			}
		}
	}
	return nil
}

// validateGroup enforces the sibling-index invariant for one (parent, name)
// pair: either a single unindexed instance, or instances [1]..[n] with n>1,
// all present and none unindexed. Anything else cannot have been produced
// by a well-formed encoding.
func (b *builder) validateGroup(r *rec, name string, group map[int]*rec) error {
	if _, plain := group[0]; plain {
		if len(group) == 1 {
			return nil
		}
		return b.report(&flat.StructureError{
			Path:   spath.Join(r.prefix, name),
			Reason: "mixed indexed and unindexed same-named siblings",
		})
	}
	if len(group) == 1 {
		for k := range group {
			return b.report(&flat.StructureError{
				Path:   spath.Join(r.prefix, spath.Elem(name, k)),
				Reason: "sibling index on a unique sibling",
			})
		}
	}
	for k := 1; k <= len(group); k++ {
		if _, ok := group[k]; !ok {
			return b.report(&flat.StructureError{
				Path:   spath.Join(r.prefix, spath.Elem(name, k)),
				Reason: "missing sibling index",
			})
		}
	}
	return nil
}

// materialize builds the ir tree from the index. Child order is the
// first-seen order of distinct child names, instances within a name ordered
// by sibling index. Built iteratively so document depth never touches the
// call stack.
func (b *builder) materialize() *ir.Node {
	type frame struct {
		rec  *rec
		node *ir.Node
	}
	root := &ir.Node{Name: b.root.name, Attrs: b.root.attrs}
	stack := []frame{{rec: b.root, node: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r := fr.rec
		if r.hasText && len(r.names) == 0 {
			fr.node.Text = r.text
			continue
		}
		for _, name := range r.names {
			group := r.groups[name]
			for _, cr := range orderedGroup(group) {
				cn := &ir.Node{Name: cr.name, Attrs: cr.attrs}
				fr.node.Append(cn)
				stack = append(stack, frame{rec: cr, node: cn})
			}
		}
	}
	return root
}

func orderedGroup(group map[int]*rec) []*rec {
	if r, ok := group[0]; ok && len(group) == 1 {
		return []*rec{r}
	}
	res := make([]*rec, 0, len(group))
	for k := 1; k <= len(group); k++ {
		if r, ok := group[k]; ok {
			res = append(res, r)
		}
	}
	return res
}
