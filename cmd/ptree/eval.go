package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/eval"
	"github.com/signadot/paramtree/param"
)

func ptreeEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachInput(cfg.MainConfig, cc, args, func(i int, _ string, n *param.Node) error {
		if cfg.Expr != "" {
			v, err := eval.Eval(n, cfg.Expr)
			if err != nil {
				return err
			}
			res, err := param.FromAny("result", v)
			if err != nil {
				return err
			}
			return output(cfg.MainConfig, cc.Out, i, res)
		}
		res, err := eval.ExpandNode(n, cfg.Env)
		if err != nil {
			return err
		}
		return output(cfg.MainConfig, cc.Out, i, res)
	})
}

// envFunc parses a key=val argument into env.  val is YAML and dotted keys
// create nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
