// Package param provides hierarchical, type-tagged parameter trees.
//
// # Overview
//
// A parameter tree carries named, typed configuration values from an input
// layer (script, file, command line) to the objects that consume them.  The
// tree is a recursive tagged union: each Node has a Kind, a name and either
// a value or a list of children, never both.
//
// # Kinds
//
//   - BOOLEAN, FLOAT, STRING, INTEGER: scalar leaves
//   - USER_DATA: an opaque *Handle to caller data
//   - BLOCK: named children, order preserved, lookup by first match
//   - ARRAY: positional children which should share one kind
//
// # Creating Trees
//
//	root := param.NewBlock("solver")
//	param.AddValue(root, "max_iters", 100)
//	param.AddValue(root, "tol", 1e-6)
//	root.AddParameter(param.NewArray("groups", []int{0, 1, 2}))
//
// # Reading Values
//
// Extraction is strict: INTEGER nodes extract only to integer types (range
// checked), FLOAT only to float types.
//
//	iters, err := param.GetParamValue[int](root, "max_iters")
//	groups, err := param.GetParamVectorValue[uint8](root, "groups")
//
// User data is narrowed with a checked type assertion:
//
//	m, err := param.GetUserParam[Material](root, "fuel", true)
//	f, err := param.GetDerivedParam[Material, *Fissile](root, "fuel", true)
//
// # Errors
//
// All failures are *Error values carrying the error origin scope of the
// node which detected them.  Use errors.Is with the sentinel errors
// (ErrNotFound, ErrTypeMismatch, ...) to classify them.
//
// # Paths
//
// GetPath and ListPath address descendants with kinded paths, see the
// kpath package:
//
//	tol, err := root.GetPath("options.tol")
//	names, err := root.ListPath(nil, "groups[*].name")
//
// # Related Packages
//
//   - github.com/signadot/paramtree/kpath - path syntax
//   - github.com/signadot/paramtree/encode - text, JSON and YAML output
//   - github.com/signadot/paramtree/parse - JSON, YAML, HCL and TOML input
package param
