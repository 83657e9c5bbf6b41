package param

import (
	"fmt"

	"github.com/signadot/paramtree/kpath"
)

// GetPath returns the descendant of n addressed by the kinded path p.
// Fields select the first child by name, indices select by position.
// Wildcards are not allowed; use ListPath for those.
func (n *Node) GetPath(p string) (*Node, error) {
	kp, err := kpath.Parse(p)
	if err != nil {
		return nil, &Error{Scope: n.ErrorOriginScope(), Op: "GetPath", Err: err}
	}
	return n.GetKPath(kp)
}

// GetKPath is GetPath for an already parsed path.
func (n *Node) GetKPath(kp *kpath.KPath) (*Node, error) {
	x := n
	for seg := kp; seg != nil; seg = seg.Next {
		if seg.FieldAll || seg.IndexAll {
			return nil, n.errorf("GetPath", ErrStructure, "wildcard in path %q", kp)
		}
		next, err := x.step(seg)
		if err != nil {
			return nil, err
		}
		x = next
	}
	return x, nil
}

func (n *Node) step(seg *kpath.KPath) (*Node, error) {
	if !n.kind.IsComposite() {
		return nil, n.errorf("GetPath", ErrStructure,
			"cannot descend into parameter %q of type %s", n.name, n.kind)
	}
	switch {
	case seg.Field != nil:
		return n.GetParam(*seg.Field)
	case seg.Index != nil:
		return n.GetParamAt(*seg.Index)
	}
	return nil, n.errorf("GetPath", ErrStructure, "empty path segment")
}

// ListPath appends to dst every descendant of n matching p, which may
// contain wildcards.  A field segment selects every child with that name.
// ".*" matches the children of a BLOCK and "[*]" those of an ARRAY.
func (n *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	kp, err := kpath.Parse(p)
	if err != nil {
		return dst, &Error{Scope: n.ErrorOriginScope(), Op: "ListPath", Err: err}
	}
	return n.listKPath(dst, kp), nil
}

// ListKPath is ListPath for an already parsed path.  Indices out of range,
// negative ones included, match nothing.
func (n *Node) ListKPath(dst []*Node, kp *kpath.KPath) []*Node {
	return n.listKPath(dst, kp)
}

func (n *Node) listKPath(dst []*Node, kp *kpath.KPath) []*Node {
	if kp == nil {
		return append(dst, n)
	}
	switch {
	case kp.FieldAll:
		if n.kind != BlockKind {
			return dst
		}
		for _, c := range n.params {
			dst = c.listKPath(dst, kp.Next)
		}
	case kp.IndexAll:
		if n.kind != ArrayKind {
			return dst
		}
		for _, c := range n.params {
			dst = c.listKPath(dst, kp.Next)
		}
	case kp.Field != nil:
		for _, c := range n.params {
			if c.name == *kp.Field {
				dst = c.listKPath(dst, kp.Next)
			}
		}
	case kp.Index != nil:
		if i := *kp.Index; i >= 0 && i < len(n.params) {
			dst = n.params[i].listKPath(dst, kp.Next)
		}
	}
	return dst
}

// Paths iterates over every node of the tree rooted at n in pre-order
// together with its kinded path relative to n.  The root has path "".
func (n *Node) Paths(yield func(path string, node *Node) bool) {
	n.paths("", yield)
}

func (n *Node) paths(prefix string, yield func(string, *Node) bool) bool {
	if !yield(prefix, n) {
		return false
	}
	for i, c := range n.params {
		var p string
		if n.kind == ArrayKind {
			p = kpath.JoinIndex(prefix, i)
		} else {
			p = kpath.Join(prefix, c.name)
		}
		if !c.paths(p, yield) {
			return false
		}
	}
	return true
}

// MustGetPath is GetPath for use in tests and static tables.
func (n *Node) MustGetPath(p string) *Node {
	res, err := n.GetPath(p)
	if err != nil {
		panic(fmt.Sprintf("MustGetPath(%q): %v", p, err))
	}
	return res
}
