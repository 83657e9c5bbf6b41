package mergeop

import (
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
)

var passSym = &passSymbol{name: passName}

func Pass() Symbol {
	return passSym
}

const passName = "pass"

type passSymbol struct {
	name string
}

func (s passSymbol) String() string { return s.name }

func (s passSymbol) Instance(child *param.Node) (Op, error) {
	return &passOp{op: op{name: s.name, child: child}}, nil
}

type passOp struct {
	op
}

func (p passOp) Patch(doc *param.Node) (*param.Node, error) {
	if debug.Patch() {
		debug.Logf("pass op patch on %s\n", doc.Name())
	}
	return doc, nil
}
