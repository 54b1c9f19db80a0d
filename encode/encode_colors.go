package encode

import (
	"strconv"
	"strings"

	"github.com/fundsxml/flatxml/flat"
	"github.com/fundsxml/flatxml/ir/spath"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	IndexColor
	AttrColor
	SepColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:  color.RGB(128, 168, 196).SprintfFunc(),
			IndexColor: color.RGB(128, 216, 236).SprintfFunc(),
			AttrColor:  color.RGB(196, 96, 16).SprintfFunc(),
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
			ValueColor: colorDefault,
		},
	}
}

func colorDefault(f string, args ...any) string {
	if len(args) == 0 {
		return f
	}
	return color.WhiteString(f, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

// renderLine renders one entry with per-segment coloring. Paths that do
// not parse are rendered as plain name text.
func renderLine(e flat.Entry, cf func(ColorAttr, string) string) string {
	sb := &strings.Builder{}
	p, err := spath.Parse(e.Path)
	if err != nil {
		sb.WriteString(cf(NameColor, e.Path))
	} else {
		for x := p; x != nil; x = x.Next {
			sb.WriteString(cf(SepColor, string(spath.Sep)))
			switch {
			case x.Attr:
				sb.WriteString(cf(AttrColor, x.SegmentString()))
			case x.Index > 0:
				sb.WriteString(cf(NameColor, x.Name))
				sb.WriteString(cf(IndexColor, "["+strconv.Itoa(x.Index)+"]"))
			default:
				sb.WriteString(cf(NameColor, x.Name))
			}
		}
	}
	sb.WriteString(cf(SepColor, string(flat.Delim)))
	sb.WriteString(cf(ValueColor, e.Value))
	return sb.String()
}
