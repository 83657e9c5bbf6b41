package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/paramtree/kpath"
	"github.com/signadot/paramtree/param"
)

// exprOpts returns the tree functions available to expressions evaluated
// at path within root.
func exprOpts(root *param.Node, path string) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return path, nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			n, err := root.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return param.ToAny(n)
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			ns, err := root.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, 0, len(ns))
			for _, n := range ns {
				v, err := param.ToAny(n)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func kpathJoin(parent *param.Node, prefix string, i int, c *param.Node) string {
	if parent.Type() == param.ArrayKind {
		return kpath.JoinIndex(prefix, i)
	}
	return kpath.Join(prefix, c.Name())
}
