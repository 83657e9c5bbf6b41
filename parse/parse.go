package parse

import (
	"fmt"
	"os"

	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/format"
	"github.com/signadot/paramtree/param"
)

const DefaultName = "root"

func Parse(d []byte, opts ...ParseOption) (*param.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat, name: DefaultName, filename: "<input>"}
	for _, f := range opts {
		f(pOpts)
	}
	return parse(d, pOpts)
}

// ParseFile parses the file at path.  Unless a format is given the format
// is chosen by the file suffix, defaulting to YAML.  The scope defaults to
// path.
func ParseFile(path string, opts ...ParseOption) (*param.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pOpts := &parseOpts{format: format.YAMLFormat, name: DefaultName, filename: path, scope: path}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.formatSet {
		if f, ok := format.FromSuffix(path); ok {
			pOpts.format = f
		}
	}
	return parse(d, pOpts)
}

func parse(d []byte, opts *parseOpts) (*param.Node, error) {
	var (
		res *param.Node
		err error
	)
	switch opts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, opts)
	case format.YAMLFormat:
		res, err = parseYAML(d, opts)
	case format.HCLFormat:
		res, err = parseHCL(d, opts)
	case format.TOMLFormat:
		res, err = parseTOML(d, opts)
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, opts.format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.filename, err)
	}
	if opts.scope != "" {
		res.SetScopeRecursive(opts.scope)
	}
	if debug.Parse() {
		debug.Logf("parsed %s as %s:\n%v\n", opts.filename, opts.format, res)
	}
	return res, nil
}
