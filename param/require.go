package param

import "strconv"

// RequireBlockTypeIs fails unless n has kind k.
func (n *Node) RequireBlockTypeIs(k Kind) error {
	if n.kind != k {
		return n.errorf("RequireBlockTypeIs", ErrStructure,
			"block %q is required to be of type %s but is %s", n.name, k, n.kind)
	}
	return nil
}

// RequireParameterBlockTypeIs fails unless n has a child called name of
// kind k.
func (n *Node) RequireParameterBlockTypeIs(name string, k Kind) error {
	p, err := n.GetParam(name)
	if err != nil {
		return err
	}
	return p.RequireBlockTypeIs(k)
}

// RequireParameter fails unless n has a child called name.
func (n *Node) RequireParameter(name string) error {
	if n.Has(name) {
		return nil
	}
	return &Error{
		Scope: n.ErrorOriginScope(),
		Op:    "RequireParameter",
		Param: name,
		Msg:   "required parameter not present in block " + strconv.Quote(n.name),
		Err:   ErrNotFound,
	}
}
