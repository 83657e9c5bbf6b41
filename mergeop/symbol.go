package mergeop

import (
	"fmt"
	"slices"

	"github.com/signadot/paramtree/param"
)

// Symbol names an operation and instantiates it from its argument tree.
type Symbol interface {
	String() string
	Instance(child *param.Node) (Op, error)
}

var symbols = map[string]Symbol{}

func init() {
	for _, s := range []Symbol{Pass(), JSONPatch(), MergePatch()} {
		symbols[s.String()] = s
	}
}

// Lookup returns the symbol called name.
func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown op %q", ErrPatch, name)
	}
	return s, nil
}

// Symbols returns the names of all operations, sorted.
func Symbols() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Apply instantiates the operation called name with child and runs it on
// doc.
func Apply(doc *param.Node, name string, child *param.Node) (*param.Node, error) {
	sym, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	o, err := sym.Instance(child)
	if err != nil {
		return nil, err
	}
	return o.Patch(doc)
}
