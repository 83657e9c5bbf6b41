package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree"
	"github.com/signadot/paramtree/param"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern file argument", cli.ErrUsage)
	}
	pat, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	matched := 0
	err = forEachInput(cfg.MainConfig, cc, args[1:], func(i int, file string, n *param.Node) error {
		if !paramtree.Match(n, pat) {
			theLog.Info("no match", "file", file)
			return nil
		}
		matched++
		if cfg.Trim {
			t, err := paramtree.Trim(pat, n)
			if err != nil {
				return err
			}
			n = t
		}
		return output(cfg.MainConfig, cc.Out, i, n)
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
