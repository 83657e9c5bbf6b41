package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/libdiff"
	"github.com/signadot/paramtree/mergeop"
	"github.com/signadot/paramtree/param"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Merge {
		return fmt.Errorf("%w: at most one of -text and -merge", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *param.Node) (bool, error) {
	switch {
	case cfg.Text:
		d := libdiff.Text(a, b)
		if d == "" {
			return false, nil
		}
		_, err := io.WriteString(w, d)
		return true, err
	case cfg.Merge:
		if libdiff.Equal(a, b) {
			return false, nil
		}
		d, err := mergeop.MergeDiff(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return true, err
	}
	cs := libdiff.Diff(a, b)
	if len(cs) == 0 {
		return false, nil
	}
	s := cfg.stream(w, 0)
	for _, c := range cs {
		fmt.Fprintln(s, c)
	}
	return true, s.Flush()
}
