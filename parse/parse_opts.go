package parse

import "github.com/signadot/paramtree/format"

type parseOpts struct {
	format    format.Format
	formatSet bool
	name      string
	scope     string
	filename  string
	vars      map[string]any
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseHCL() ParseOption {
	return ParseFormat(format.HCLFormat)
}
func ParseTOML() ParseOption {
	return ParseFormat(format.TOMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}

// ParseName sets the name of the root node, "root" by default.
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}

// ParseScope sets the error origin scope of every parsed node.
func ParseScope(scope string) ParseOption {
	return func(o *parseOpts) { o.scope = scope }
}

// ParseFilename names the input in diagnostics.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseVariables sets the variables visible to HCL expressions.
func ParseVariables(vars map[string]any) ParseOption {
	return func(o *parseOpts) { o.vars = vars }
}
