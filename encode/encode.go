package encode

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/paramtree/format"
	"github.com/signadot/paramtree/param"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(param.Kind, ColorAttr, string) string
}

func Encode(node *param.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("encode: nil node")
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(node, w, es)
	case format.JSONFormat:
		b := &strings.Builder{}
		if err := encodeJSON(node, b, es); err != nil {
			return err
		}
		b.WriteByte('\n')
		return writeString(w, b.String())
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(k param.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func encodeText(node *param.Node, w io.Writer, es *EncState) error {
	b := &strings.Builder{}
	if es.Color == nil {
		node.RecursiveDumpToString(b, "")
		return writeString(w, b.String())
	}
	textLines(node, b, "", es)
	return writeString(w, b.String())
}

func textLines(node *param.Node, b *strings.Builder, indent string, es *EncState) {
	k := node.Type()
	b.WriteString(indent)
	b.WriteString(es.color(k, NameColor, node.Name()))
	b.WriteString(es.color(k, SepColor, " ("))
	b.WriteString(es.color(k, KindColor, k.String()))
	b.WriteString(es.color(k, SepColor, ") ="))
	if v, err := node.Value(); err == nil {
		b.WriteByte(' ')
		b.WriteString(es.color(k, ValueColor, v.String()))
	}
	b.WriteByte('\n')
	for _, p := range node.All() {
		textLines(p, b, indent+"  ", es)
	}
}

func encodeJSON(node *param.Node, b *strings.Builder, es *EncState) error {
	k := node.Type()
	switch k {
	case param.BlockKind, param.ArrayKind:
		lb, rb := "{", "}"
		if k == param.ArrayKind {
			lb, rb = "[", "]"
		}
		b.WriteString(es.color(k, SepColor, lb))
		if node.NumParameters() == 0 {
			b.WriteString(es.color(k, SepColor, rb))
			return nil
		}
		es.depth++
		for i, p := range node.All() {
			if i != 0 {
				b.WriteString(es.color(k, SepColor, ","))
			}
			es.newline(b)
			if k == param.BlockKind {
				b.WriteString(es.color(p.Type(), NameColor, param.QuoteJSON(p.Name())))
				b.WriteString(es.color(k, SepColor, ":"))
				if !es.wire {
					b.WriteByte(' ')
				}
			}
			if err := encodeJSON(p, b, es); err != nil {
				return err
			}
		}
		es.depth--
		es.newline(b)
		b.WriteString(es.color(k, SepColor, rb))
		return nil
	}
	v, err := node.Value()
	if err != nil {
		return err
	}
	var lit string
	switch k {
	case param.StringKind:
		s, _ := v.Str()
		lit = param.QuoteJSON(s)
	case param.FloatKind:
		f, _ := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return notRepresentable(node, "JSON")
		}
		lit = v.String()
	case param.BoolKind, param.IntKind:
		lit = v.String()
	default:
		return notRepresentable(node, "JSON")
	}
	b.WriteString(es.color(k, ValueColor, lit))
	return nil
}

func (es *EncState) newline(b *strings.Builder) {
	if es.wire {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func notRepresentable(node *param.Node, in string) error {
	return &param.Error{
		Scope: node.ErrorOriginScope(),
		Op:    "Encode",
		Param: node.Name(),
		Msg:   fmt.Sprintf("%s has no %s form", node.Type(), in),
		Err:   param.ErrNotRepresentable,
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
