package param

import "github.com/signadot/paramtree/kpath"

// Visit walks the tree rooted at n.  f is called before the children of a
// node with isPost false and after them with isPost true.  Returning false
// from the pre-order call skips the children.  path is the kinded path of
// the node relative to n.
func (n *Node) Visit(f func(path string, y *Node, isPost bool) (bool, error)) error {
	return n.visit("", f)
}

func (n *Node) visit(path string, f func(string, *Node, bool) (bool, error)) error {
	dive, err := f(path, n, false)
	if err != nil {
		return err
	}
	if dive {
		for i, c := range n.params {
			var cp string
			if n.kind == ArrayKind {
				cp = kpath.JoinIndex(path, i)
			} else {
				cp = kpath.Join(path, c.name)
			}
			if err := c.visit(cp, f); err != nil {
				return err
			}
		}
	}
	_, err = f(path, n, true)
	return err
}

// SetScopeRecursive sets the error origin scope of n and all its
// descendants.
func (n *Node) SetScopeRecursive(scope string) {
	n.scope = scope
	for _, c := range n.params {
		c.SetScopeRecursive(scope)
	}
}

// SortRecursive sorts the children of every BLOCK in the tree by name.
// ARRAY order is positional and left alone.
func (n *Node) SortRecursive() {
	if n.kind == BlockKind {
		n.SortParameters()
	}
	for _, c := range n.params {
		c.SortRecursive()
	}
}
