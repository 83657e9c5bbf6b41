// Package dirbuild interprets a parameter build directory.
//
// A build directory holds a build file, build.{yaml,json,hcl,toml}, with
// a top level "build" block:
//
//	build:
//	  name: deck
//	  sources: [base.yaml, "overlays/*.yaml"]
//	  patches: [fix.json]
//	  env:
//	    n: 4
//
// Sources are glob patterns relative to the directory.  The matching files
// are merged in order, each one as an overlay onto the previous result.
// Patches are RFC 6902 patch files applied afterwards.  Finally strings
// are expanded with env.
package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/eval"
	"github.com/signadot/paramtree/gomap"
	"github.com/signadot/paramtree/mergeop"
	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
)

const BuildBlock = "build"

type Dir struct {
	Root    string         `param:"-"`
	Name    string         `param:"name,omitempty"`
	Sources []string       `param:"sources" validate:"required,min=1,dive,required"`
	Patches []string       `param:"patches,omitempty"`
	Env     map[string]any `param:"env,omitempty"`
}

// OpenDir reads the build file in path.  env overrides the build file's
// env.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	if debug.Build() {
		debug.Logf("OpenDir input env:\n%v\n", env)
	}
	var (
		bPath string
		found bool
	)
	for _, ext := range []string{".yaml", ".json", ".hcl", ".toml"} {
		candidate := filepath.Join(path, "build"+ext)
		_, err := os.Stat(candidate)
		if err == nil {
			bPath = candidate
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{yaml,json,hcl,toml} in %q", path)
	}
	n, err := parse.ParseFile(bPath)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", bPath, err)
	}
	return newDir(n, path, env)
}

func newDir(n *param.Node, path string, env map[string]any) (*Dir, error) {
	b, err := n.GetParam(BuildBlock)
	if err != nil {
		return nil, err
	}
	dir := &Dir{}
	if err := gomap.Decode(b, dir); err != nil {
		return nil, fmt.Errorf("error decoding %s block: %w", BuildBlock, err)
	}
	dir.Root = path
	if dir.Name == "" {
		dir.Name = parse.DefaultName
	}
	if len(env) != 0 {
		merged, err := mergeEnv(dir.Env, env)
		if err != nil {
			return nil, err
		}
		dir.Env = merged
	}
	if debug.Build() {
		debug.Logf("loaded env %v\n", dir.Env)
	}
	return dir, nil
}

// Files returns the source files in merge order.  Each pattern must match
// at least one file; matches of one pattern are sorted.
func (d *Dir) Files() ([]string, error) {
	var res []string
	for _, pat := range d.Sources {
		ms, err := filepath.Glob(filepath.Join(d.Root, pat))
		if err != nil {
			return nil, fmt.Errorf("bad source pattern %q: %w", pat, err)
		}
		if len(ms) == 0 {
			return nil, fmt.Errorf("source %q matches no files in %s", pat, d.Root)
		}
		slices.Sort(ms)
		res = append(res, ms...)
	}
	return res, nil
}

// Build merges the sources, applies the patches and expands the result.
func (d *Dir) Build() (*param.Node, error) {
	files, err := d.Files()
	if err != nil {
		return nil, err
	}
	var res *param.Node
	for _, f := range files {
		n, err := parse.ParseFile(f, parse.ParseName(d.Name))
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = n
			continue
		}
		if res, err = mergeop.Merge(res, n); err != nil {
			return nil, fmt.Errorf("error merging %s: %w", f, err)
		}
	}
	for _, p := range d.Patches {
		pf := filepath.Join(d.Root, p)
		data, err := os.ReadFile(pf)
		if err != nil {
			return nil, err
		}
		if res, err = mergeop.Patch(res, data); err != nil {
			return nil, fmt.Errorf("error applying %s: %w", pf, err)
		}
		if debug.Build() {
			debug.Logf("applied patch %s\n", pf)
		}
	}
	return eval.ExpandNode(res, d.Env)
}

func mergeEnv(dst, p map[string]any) (map[string]any, error) {
	if dst == nil {
		dst = map[string]any{}
	}
	doc, err := param.FromAny("env", dst)
	if err != nil {
		return nil, err
	}
	patch, err := param.FromAny("env", p)
	if err != nil {
		return nil, err
	}
	n, err := mergeop.Merge(doc, patch)
	if err != nil {
		return nil, err
	}
	res, err := param.ToAny(n)
	if err != nil {
		return nil, err
	}
	return res.(map[string]any), nil
}
