package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is one segment of a kinded path, linked to the next one.
//   - "a.b" → Field "a" then Field "b"
//   - "a.*" → Field "a" then all fields
//   - "a[0]" → Field "a" then Index 0
//   - "a[*]" → Field "a" then all indices
type KPath struct {
	Field    *string // child name
	FieldAll bool    // .* matches every child of a BLOCK
	Index    *int    // child position
	IndexAll bool    // [*] matches every child of an ARRAY
	Next     *KPath  // nil for the last segment
}

// Field returns a single segment path selecting child name.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single segment path selecting child i.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the kinded path string representation of p.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString("*")
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteField(*x.Field))
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Append returns a copy of p with q added at the end.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.clone()
	}
	res := p.clone()
	last := res
	for last.Next != nil {
		last = last.Next
	}
	last.Next = q.clone()
	return res
}

func (p *KPath) clone() *KPath {
	if p == nil {
		return nil
	}
	res := &KPath{FieldAll: p.FieldAll, IndexAll: p.IndexAll}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	res.Next = p.Next.clone()
	return res
}

// Join appends the rendering of a field segment to a path string.
func Join(prefix, name string) string {
	if prefix == "" {
		return QuoteField(name)
	}
	return prefix + "." + QuoteField(name)
}

// JoinIndex appends the rendering of an index segment to a path string.
func JoinIndex(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// QuoteField quotes a name if it would not parse back as a bare field.
func QuoteField(name string) string {
	if name == "" || name == "*" || strings.ContainsAny(name, ".[]\"' \t\n") {
		return strconv.Quote(name)
	}
	return name
}

// Parse parses a kinded path string into a KPath structure.
//
// Examples:
//   - "a.b.c" → 3 field segments
//   - "a[0][1]" → field then 2 index segments
//   - "a[*].b" → field, index wildcard, field
//   - "" → root path (returns nil)
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

func parseKFrag(frag string, parent *KPath, top bool) error {
	if len(frag) == 0 {
		return nil
	}
	switch {
	case frag[0] == '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseKIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		return parseNext(frag[i+2:], parent)
	case frag[0] == '.' && !top:
		return parseKField(frag[1:], parent)
	case frag[0] == '.':
		return fmt.Errorf("unexpected leading '.'")
	case top:
		return parseKField(frag, parent)
	default:
		return fmt.Errorf("expected '.' or '[', got %q", frag[0])
	}
}

func parseNext(rest string, parent *KPath) error {
	if len(rest) == 0 {
		return nil
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, false); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseKField(frag string, parent *KPath) error {
	if len(frag) == 0 {
		return fmt.Errorf("expected field at end of string")
	}
	if frag[0] == '"' {
		n, err := findQuotedStringEnd(frag)
		if err != nil {
			return err
		}
		field, err := strconv.Unquote(frag[:n])
		if err != nil {
			return fmt.Errorf("invalid quoted field %s: %w", frag[:n], err)
		}
		parent.Field = &field
		return parseNext(frag[n:], parent)
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		i = len(frag)
	}
	field := frag[:i]
	switch field {
	case "":
		return fmt.Errorf("empty field")
	case "*":
		parent.FieldAll = true
	default:
		if strings.ContainsAny(field, `]"`) {
			return fmt.Errorf("unexpected character in field %q", field)
		}
		parent.Field = &field
	}
	return parseNext(frag[i:], parent)
}

// findQuotedStringEnd returns the length of the double quoted string at the
// start of frag, including the closing quote.
func findQuotedStringEnd(frag string) (int, error) {
	escaped := false
	for i := 1; i < len(frag); i++ {
		switch frag[i] {
		case '\\':
			escaped = !escaped
		case '"':
			if !escaped {
				return i + 1, nil
			}
			escaped = false
		default:
			escaped = false
		}
	}
	return 0, fmt.Errorf("unterminated quoted field")
}

func parseKIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("invalid array index %q: %w", is, err)
	}
	return int(u64), false, nil
}

// Wild reports whether any segment of p is a wildcard.
func (p *KPath) Wild() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

// LastSegment returns the final segment of p.
func (p *KPath) LastSegment() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// SegmentString renders the single segment p, without its successors.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	seg := *p
	seg.Next = nil
	return seg.String()
}
