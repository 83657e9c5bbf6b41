package mergeop

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
)

var jPatchSym = &jPatchSymbol{name: jPatchName}

// JSONPatch is the RFC 6902 operation.  Its argument is the ARRAY of
// patch operations.
func JSONPatch() Symbol {
	return jPatchSym
}

const jPatchName = "json-patch"

type jPatchSymbol struct {
	name string
}

func (s jPatchSymbol) String() string { return s.name }

func (s jPatchSymbol) Instance(child *param.Node) (Op, error) {
	if child.Type() != param.ArrayKind {
		return nil, fmt.Errorf("%w: %s op expects an %s, got %s", ErrPatch, s, param.ArrayKind, child.Type())
	}
	d, err := toJSON(child)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.name, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *param.Node) (*param.Node, error) {
	if debug.Patch() {
		debug.Logf("json-patch op called on %s with %d ops\n", doc.Name(), len(jp.ops))
	}
	return applyPatch(doc, jp.ops)
}

// Patch applies the RFC 6902 patch document patchJSON to doc and returns
// the result.  doc is not modified.
func Patch(doc *param.Node, patchJSON []byte) (*param.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return applyPatch(doc, ops)
}

func applyPatch(doc *param.Node, ops jsonpatch.Patch) (*param.Node, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out)
}
