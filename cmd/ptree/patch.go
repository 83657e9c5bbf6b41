package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/mergeop"
	"github.com/signadot/paramtree/param"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available patch operations:\n")
		for _, s := range mergeop.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	op := cfg.Op
	if op == "" {
		op = mergeop.JSONPatch().String()
	}
	sym, err := mergeop.Lookup(op)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	p, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	o, err := sym.Instance(p)
	if err != nil {
		return fmt.Errorf("error with patch %s: %w", args[0], err)
	}
	return forEachInput(cfg.MainConfig, cc, args[1:], func(i int, _ string, n *param.Node) error {
		res, err := o.Patch(n)
		if err != nil {
			return err
		}
		return output(cfg.MainConfig, cc.Out, i, res)
	})
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay", cli.ErrUsage)
	}
	res, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, file := range args[1:] {
		overlay, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err = mergeop.Merge(res, overlay)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	return output(cfg.MainConfig, cc.Out, 0, res)
}
