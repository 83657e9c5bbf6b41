package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/paramtree/kpath"
	"github.com/signadot/paramtree/param"
)

// diffArray works on element summaries:
//
//  1. each element is summarized as <kind>-<value> for scalars and as
//     <kind> for composites, user data and multi-line strings
//  2. the sequences of summaries are diffed
//  3. matching composite elements are recursed into
//  4. a delete directly followed by an insert becomes a single change
//
// Paths of deleted and matching elements use their index in from, and
// inserted ones their index in to.
func diffArray(dst []Change, path string, from, to *param.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fs, ts := from.Parameters(), to.Parameters()

	fi, ti := 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				dst = append(dst, makeChange(kpath.JoinIndex(path, fi), fs[fi], nil))
				lastDel = len(dst) - 1
				fi++
			case diffpatch.DiffEqual:
				lastDel = -1
				dst = diff(dst, kpath.JoinIndex(path, fi), fs[fi], ts[ti])
				fi++
				ti++
			case diffpatch.DiffInsert:
				if lastDel != -1 && lastDel == len(dst)-1 {
					del := dst[lastDel]
					dst[lastDel] = makeChange(del.Path, del.From, ts[ti])
				} else {
					dst = append(dst, makeChange(kpath.JoinIndex(path, ti), nil, ts[ti]))
				}
				lastDel = -1
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, n *param.Node) []rune {
	rs := make([]rune, n.NumParameters())
	for i, c := range n.All() {
		sum := summaryStr(c)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(n *param.Node) string {
	k := n.Type().String()
	v, err := n.Value()
	if err != nil {
		return k
	}
	switch n.Type() {
	case param.StringKind:
		s, _ := v.Str()
		if strings.Contains(s, "\n") {
			return k + "/m"
		}
		return k + "-" + s
	case param.IntKind:
		i, _ := v.Int()
		return k + "-" + strconv.FormatInt(i, 10)
	case param.UserDataKind:
		return k
	}
	return k + "-" + v.String()
}
