package libdiff

import (
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
)

// Diff returns the changes turning from into to, in pre-order of from.
// Children of a BLOCK are aligned by name and children of an ARRAY by
// their summaries; the root names are not compared.
func Diff(from, to *param.Node) []Change {
	res := diff(nil, "", from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %d changes\n", from.Name(), to.Name(), len(res))
	}
	return res
}

func diff(dst []Change, path string, from, to *param.Node) []Change {
	if from.Type() != to.Type() {
		return append(dst, makeChange(path, from, to))
	}
	switch from.Type() {
	case param.BlockKind:
		return diffBlock(dst, path, from, to)
	case param.ArrayKind:
		return diffArray(dst, path, from, to)
	}
	fv, _ := from.Value()
	tv, _ := to.Value()
	if !fv.Equal(tv) {
		dst = append(dst, makeChange(path, from, to))
	}
	return dst
}

// Equal reports whether Diff would find no changes.
func Equal(from, to *param.Node) bool {
	return len(diff(nil, "", from, to)) == 0
}
