package mergeop

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
)

var mPatchSym = &mPatchSymbol{name: mPatchName}

// MergePatch is the RFC 7386 operation.  Its argument is the overlay.
func MergePatch() Symbol {
	return mPatchSym
}

const mPatchName = "merge-patch"

type mPatchSymbol struct {
	name string
}

func (s mPatchSymbol) String() string { return s.name }

func (s mPatchSymbol) Instance(child *param.Node) (Op, error) {
	d, err := toJSON(child)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{overlay: d, op: op{name: s.name, child: child}}, nil
}

type mPatchOp struct {
	op
	overlay []byte
}

func (mp mPatchOp) Patch(doc *param.Node) (*param.Node, error) {
	if debug.Patch() {
		debug.Logf("merge-patch op called on %s\n", doc.Name())
	}
	return mergeJSON(doc, mp.overlay)
}

// Merge overlays overlay onto base.  Blocks merge recursively, anything
// else in overlay replaces what is in base.  Neither input is modified.
func Merge(base, overlay *param.Node) (*param.Node, error) {
	d, err := toJSON(overlay)
	if err != nil {
		return nil, err
	}
	return mergeJSON(base, d)
}

func mergeJSON(base *param.Node, overlay []byte) (*param.Node, error) {
	d, err := toJSON(base)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, overlay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(base, out)
}

// MergeDiff returns the RFC 7386 merge patch turning from into to.
func MergeDiff(from, to *param.Node) ([]byte, error) {
	f, err := toJSON(from)
	if err != nil {
		return nil, err
	}
	t, err := toJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
