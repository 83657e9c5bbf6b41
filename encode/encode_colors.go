package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/paramtree/param"
)

type Colorable struct {
	Kind param.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	KindColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range param.Kinds() {
		able := Colorable{Kind: k, Attr: KindColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = NameColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = param.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = param.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = param.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = param.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = param.UserDataKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = param.BlockKind
	able.Attr = NameColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Kind = param.ArrayKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k param.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k param.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
