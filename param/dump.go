package param

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RecursiveDumpToString appends a pre-order rendering of the tree to out,
// one node per line:
//
//	root (BLOCK) =
//	  count (INTEGER) = 5
//	  values (ARRAY) =
//	    0 (FLOAT) = 1.5
func (n *Node) RecursiveDumpToString(out *strings.Builder, indent string) {
	out.WriteString(indent)
	out.WriteString(n.name)
	out.WriteString(" (")
	out.WriteString(n.kind.String())
	out.WriteString(") =")
	if n.value != nil {
		out.WriteByte(' ')
		out.WriteString(n.value.String())
	}
	out.WriteByte('\n')
	for _, p := range n.params {
		p.RecursiveDumpToString(out, indent+"  ")
	}
}

// DumpString returns the text dump of n.
func (n *Node) DumpString() string {
	b := &strings.Builder{}
	n.RecursiveDumpToString(b, "")
	return b.String()
}

// RecursiveDumpToJSON appends a compact JSON rendering of the tree to out.
// BLOCKs become objects keyed by child name, ARRAYs become arrays.
// USER_DATA cannot be represented and yields ErrNotRepresentable.
func (n *Node) RecursiveDumpToJSON(out *strings.Builder) error {
	switch n.kind {
	case BlockKind:
		out.WriteByte('{')
		for i, p := range n.params {
			if i != 0 {
				out.WriteByte(',')
			}
			out.WriteString(QuoteJSON(p.name))
			out.WriteByte(':')
			if err := p.RecursiveDumpToJSON(out); err != nil {
				return err
			}
		}
		out.WriteByte('}')
	case ArrayKind:
		out.WriteByte('[')
		for i, p := range n.params {
			if i != 0 {
				out.WriteByte(',')
			}
			if err := p.RecursiveDumpToJSON(out); err != nil {
				return err
			}
		}
		out.WriteByte(']')
	case BoolKind, IntKind:
		out.WriteString(n.value.String())
	case StringKind:
		out.WriteString(QuoteJSON(n.value.s))
	case FloatKind:
		f := n.value.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return n.errorf("RecursiveDumpToJSON", ErrNotRepresentable, "parameter %q: %v has no JSON form", n.name, f)
		}
		out.WriteString(formatFloat(f))
	default:
		return n.errorf("RecursiveDumpToJSON", ErrNotRepresentable, "parameter %q of type %s has no JSON form", n.name, n.kind)
	}
	return nil
}

// formatFloat renders f so that it reads back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// QuoteJSON returns v as a JSON string literal.
func QuoteJSON(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
