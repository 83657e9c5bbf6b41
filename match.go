package paramtree

import (
	"strconv"

	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
)

// Match reports whether doc matches pattern.  A BLOCK pattern matches a
// BLOCK having, for each pattern child, a first child of the same name
// which matches it; extra parameters in doc are ignored.  An ARRAY pattern
// matches an ARRAY of the same length elementwise.  Leaves match leaves of
// the same kind and value.  Names of doc and pattern themselves are not
// compared.
func Match(doc, pattern *param.Node) bool {
	if debug.Match() {
		debug.Logf("match %s (%s) against %s\n", doc.Name(), doc.Type(), pattern.Type())
	}
	if doc.Type() != pattern.Type() {
		return false
	}
	switch pattern.Type() {
	case param.BlockKind:
		return matchBlock(doc, pattern)
	case param.ArrayKind:
		return matchArray(doc, pattern)
	}
	dv, _ := doc.Value()
	pv, _ := pattern.Value()
	return dv.Equal(pv)
}

func matchBlock(doc, pattern *param.Node) bool {
	for _, p := range pattern.All() {
		d, err := doc.GetParam(p.Name())
		if err != nil {
			return false
		}
		if !Match(d, p) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *param.Node) bool {
	if doc.NumParameters() != pattern.NumParameters() {
		return false
	}
	ds := doc.Parameters()
	for i, p := range pattern.All() {
		if !Match(ds[i], p) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to the parameters named in
// pattern.  BLOCK children of doc are kept, in doc order, when pattern has
// a child of the same name.  For an ARRAY, each pattern element keeps the
// first unused doc element matching it, renumbered.  Anything else is copied.
func Trim(pattern, doc *param.Node) (*param.Node, error) {
	if pattern.Type() != doc.Type() {
		return doc.Clone(), nil
	}
	var res *param.Node
	switch pattern.Type() {
	case param.BlockKind:
		res = param.NewBlock(doc.Name())
		for _, d := range doc.All() {
			p, err := pattern.GetParam(d.Name())
			if err != nil {
				continue
			}
			t, err := Trim(p, d)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(t); err != nil {
				return nil, err
			}
		}
	case param.ArrayKind:
		res = param.NewArray[int](doc.Name(), nil)
		ds := doc.Parameters()
		used := make([]bool, len(ds))
		for _, p := range pattern.All() {
			for i, d := range ds {
				if used[i] || !Match(d, p) {
					continue
				}
				t, err := Trim(p, d)
				if err != nil {
					return nil, err
				}
				t.SetBlockName(strconv.Itoa(res.NumParameters()))
				if err := res.AddParameter(t); err != nil {
					return nil, err
				}
				used[i] = true
				break
			}
		}
	default:
		return doc.Clone(), nil
	}
	res.SetErrorOriginScope(doc.ErrorOriginScope())
	return res, nil
}
