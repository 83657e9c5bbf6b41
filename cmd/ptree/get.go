package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/param"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a kinded path", cli.ErrUsage)
	}
	path := args[0]
	return forEachInput(cfg.MainConfig, cc, args[1:], func(i int, file string, n *param.Node) error {
		if !cfg.List {
			res, err := n.GetPath(path)
			if err != nil {
				return err
			}
			return output(cfg.MainConfig, cc.Out, i, res)
		}
		res, err := n.ListPath(nil, path)
		if err != nil {
			return err
		}
		if len(res) == 0 {
			theLog.Warn("no match", "path", path, "file", file)
		}
		for _, m := range res {
			if err := output(cfg.MainConfig, cc.Out, i, m); err != nil {
				return err
			}
		}
		return nil
	})
}
