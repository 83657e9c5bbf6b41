package mergeop

import (
	"errors"
	"strings"

	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
)

var ErrPatch = errors.New("patch error")

// Op is an instantiated operation which patches a tree.
type Op interface {
	Patch(doc *param.Node) (*param.Node, error)
	String() string
}

type op struct {
	name  string
	child *param.Node
}

func (o op) String() string {
	return o.name
}

// toJSON renders doc for the json-patch library.  Of several children
// with the same name only the first is rendered, the one GetParam finds.
func toJSON(doc *param.Node) ([]byte, error) {
	first, err := firstNames(doc)
	if err != nil {
		return nil, err
	}
	buf := &strings.Builder{}
	if err := first.RecursiveDumpToJSON(buf); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// fromJSON parses a patched document and gives it the name and scope of
// the original.
func fromJSON(orig *param.Node, d []byte) (*param.Node, error) {
	res, err := parse.Parse(d, parse.ParseJSON(), parse.ParseName(orig.Name()))
	if err != nil {
		return nil, err
	}
	res.SetScopeRecursive(orig.ErrorOriginScope())
	return res, nil
}

func firstNames(n *param.Node) (*param.Node, error) {
	var res *param.Node
	switch n.Type() {
	case param.BlockKind:
		res = param.NewBlock(n.Name())
	case param.ArrayKind:
		res = param.NewArray[int](n.Name(), nil)
	default:
		return n.Clone(), nil
	}
	res.SetErrorOriginScope(n.ErrorOriginScope())
	for _, c := range n.Parameters() {
		if n.Type() == param.BlockKind && res.Has(c.Name()) {
			continue
		}
		fc, err := firstNames(c)
		if err != nil {
			return nil, err
		}
		if err := res.AddParameter(fc); err != nil {
			return nil, err
		}
	}
	return res, nil
}
