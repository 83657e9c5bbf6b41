package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/encode"
	"github.com/signadot/paramtree/param"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachInput(cfg.MainConfig, cc, args, func(i int, _ string, n *param.Node) error {
		return output(cfg.MainConfig, cc.Out, i, n)
	})
}

// output encodes n for input i through a stream.
func output(cfg *MainConfig, w io.Writer, i int, n *param.Node) error {
	s := cfg.stream(w, i)
	if err := encode.Encode(n, s, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return s.Flush()
}
