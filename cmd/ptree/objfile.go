package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
)

// getObjFile parses path, or the command input when path is "-".
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*param.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	res, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, err
	}
	if cfg.Sort {
		res.SortRecursive()
	}
	return res, nil
}

// forEachInput calls f on every parsed input, the command input when there
// are no files.
func forEachInput(cfg *MainConfig, cc *cli.Context, files []string, f func(i int, file string, n *param.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		n, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(i, file, n); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
