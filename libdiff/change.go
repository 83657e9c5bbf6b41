package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/paramtree/param"
)

// Change is one difference between two trees.  From is nil for an insert
// and To is nil for a delete.
type Change struct {
	Path string
	Op   Op
	From *param.Node
	To   *param.Node
}

func makeChange(path string, from, to *param.Node) Change {
	switch {
	case from == nil:
		return Change{Path: path, Op: OpInsert, To: to}
	case to == nil:
		return Change{Path: path, Op: OpDelete, From: from}
	case from.Type() != to.Type():
		return Change{Path: path, Op: OpKind, From: from, To: to}
	default:
		return Change{Path: path, Op: OpChange, From: from, To: to}
	}
}

// String renders c on one line, or several for changed multi-line
// strings.
func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "<root>"
	}
	switch c.Op {
	case OpInsert:
		return fmt.Sprintf("%s %s: %s", c.Op.sigil(), path, summary(c.To))
	case OpDelete:
		return fmt.Sprintf("%s %s: %s", c.Op.sigil(), path, summary(c.From))
	}
	if c.Op == OpChange && c.From.Type() == param.StringKind {
		fs, _ := param.GetValue[string](c.From)
		ts, _ := param.GetValue[string](c.To)
		if strings.Contains(fs, "\n") || strings.Contains(ts, "\n") {
			return fmt.Sprintf("%s %s:\n%s", c.Op.sigil(), path, lineDiff(fs, ts))
		}
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op.sigil(), path, summary(c.From), summary(c.To))
}

func summary(n *param.Node) string {
	if n.HasValue() {
		v, _ := n.Value()
		return fmt.Sprintf("(%s) %s", n.Type(), v)
	}
	return fmt.Sprintf("(%s) %d parameters", n.Type(), n.NumParameters())
}
