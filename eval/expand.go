package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/encode"
	"github.com/signadot/paramtree/format"
	"github.com/signadot/paramtree/param"
)

type Env = map[string]any

// EnvFromNode returns an environment with one entry per child of the BLOCK
// n, converted with param.ToAny.
func EnvFromNode(n *param.Node) (Env, error) {
	if err := n.RequireBlockTypeIs(param.BlockKind); err != nil {
		return nil, err
	}
	v, err := param.ToAny(n)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func run(input string, env Env, opts []expr.Option) (any, error) {
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, res)
	}
	return res, nil
}

// Eval evaluates expression with the children of the BLOCK root as
// variables.
func Eval(root *param.Node, expression string) (any, error) {
	env, err := EnvFromNode(root)
	if err != nil {
		return nil, err
	}
	return run(expression, env, exprOpts(root, ""))
}

// ExpandNode returns a copy of root with every expression expanded.
// Errors name the kinded path of the offending node.
func ExpandNode(root *param.Node, env Env) (*param.Node, error) {
	return expandNode(root, root, "", env)
}

func expandNode(root, n *param.Node, path string, env Env) (*param.Node, error) {
	switch n.Type() {
	case param.BlockKind, param.ArrayKind:
		res := param.NewBlock(n.Name())
		res.SetErrorOriginScope(n.ErrorOriginScope())
		if n.Type() == param.ArrayKind {
			if err := res.ChangeToArray(); err != nil {
				return nil, err
			}
		}
		for i, c := range n.All() {
			cp := kpathJoin(n, path, i, c)
			ec, err := expandNode(root, c, cp, env)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(ec); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	if n.Type() != param.StringKind {
		return n.Clone(), nil
	}
	s, _ := param.GetValue[string](n)
	opts := exprOpts(root, path)
	if raw := GetRaw(s); raw != "" {
		val, err := run(raw, env, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: error evaluating %q: %w", displayPath(path), raw, err)
		}
		res, err := param.FromAny(n.Name(), val)
		if err != nil {
			return nil, fmt.Errorf("%s: result of %q: %w", displayPath(path), raw, err)
		}
		res.SetScopeRecursive(n.ErrorOriginScope())
		return res, nil
	}
	v, err := expandString(s, env, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: error expanding %q: %w", displayPath(path), s, err)
	}
	res := param.New(n.Name(), v)
	res.SetErrorOriginScope(n.ErrorOriginScope())
	return res, nil
}

func displayPath(p string) string {
	if p == "" {
		return "<root>"
	}
	return p
}

// GetRaw extracts the expression from a .[expr] reference.
// If v is not in .[expr] form, it returns an empty string.
// Example: GetRaw(".[number]") returns "number"
func GetRaw(v string) string {
	if !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

// ExpandString replaces each "$[expr]" in v by the rendered result of
// expr.  If an expression is not closed with an unescaped ], the text is
// kept literally.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, env, nil)
}

func expandString(v string, env Env, opts []expr.Option) (string, error) {
	out := make([]byte, 0, len(v))
	var key []byte
	exprStart := -1
	for i := 0; i < len(v); i++ {
		c := v[i]
		if exprStart == -1 {
			if c == '$' && i+1 < len(v) && v[i+1] == '[' {
				exprStart = i
				key = key[:0]
				i++
				continue
			}
			out = append(out, c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(v) {
				i++
				key = append(key, v[i])
			}
		case ']':
			k := strings.TrimSpace(string(key))
			x, err := run(k, env, opts)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", k, err)
			}
			d, err := render(x)
			if err != nil {
				return "", fmt.Errorf("could not render result of %q: %w", k, err)
			}
			out = append(out, d...)
			exprStart = -1
		default:
			key = append(key, c)
		}
	}
	if exprStart != -1 {
		out = append(out, v[exprStart:]...)
	}
	return string(out), nil
}

// render formats an evaluation result for insertion into a string.
// Composite results are rendered as wire JSON.
func render(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "", fmt.Errorf("%w: nil result", param.ErrNotRepresentable)
	}
	node, err := param.FromAny("", v)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	if err := encode.Encode(node, b, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
