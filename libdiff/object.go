package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/paramtree/kpath"
	"github.com/signadot/paramtree/param"
)

// diffBlock diffs the sequences of child names, then recurses on
// children whose names line up.
func diffBlock(dst []Change, path string, from, to *param.Node) []Change {
	names := map[string]rune{}
	fromRunes := mapNames(names, from)
	toRunes := mapNames(names, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fs, ts := from.Parameters(), to.Parameters()
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				dst = append(dst, makeChange(kpath.Join(path, fs[fi].Name()), fs[fi], nil))
				fi++
			case diffpatch.DiffInsert:
				dst = append(dst, makeChange(kpath.Join(path, ts[ti].Name()), nil, ts[ti]))
				ti++
			case diffpatch.DiffEqual:
				dst = diff(dst, kpath.Join(path, fs[fi].Name()), fs[fi], ts[ti])
				fi++
				ti++
			}
		}
	}
	return dst
}

func mapNames(m map[string]rune, n *param.Node) []rune {
	rs := make([]rune, n.NumParameters())
	for i, c := range n.All() {
		r, ok := m[c.Name()]
		if !ok {
			r = rune(len(m))
			m[c.Name()] = r
		}
		rs[i] = r
	}
	return rs
}
