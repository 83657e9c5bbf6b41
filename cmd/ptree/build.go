package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/dirbuild"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one directory, got %v", cli.ErrUsage, args)
	}
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	if env == nil {
		env = map[string]any{}
	}
	for k, v := range cfg.Env {
		env[k] = v
	}
	dir, err := dirbuild.OpenDir(path, env)
	if err != nil {
		return err
	}
	if cfg.List {
		files, err := dir.Files()
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cc.Out, f)
		}
		return nil
	}
	res, err := dir.Build()
	if err != nil {
		return fmt.Errorf("error building %s: %w", path, err)
	}
	if cfg.Sort {
		res.SortRecursive()
	}
	theLog.Debug("built", "dir", path, "sources", len(dir.Sources), "patches", len(dir.Patches))
	return output(cfg.MainConfig, cc.Out, 0, res)
}
