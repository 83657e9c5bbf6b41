// Package parse reads parameter trees from JSON, YAML, HCL and TOML.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFormat(format.HCLFormat))
//	node, err := parse.ParseFile("deck.toml", parse.ParseScope("deck"))
//
// # Kind Mapping
//
// Integers become INTEGER, other numbers FLOAT, mappings BLOCK and
// sequences ARRAY.  Null values have no parameter form and are rejected.
// JSON, YAML and HCL keep the document order of keys; TOML tables come out
// sorted by key.
//
// HCL attributes are evaluated with the variables given by ParseVariables
// and a small function library (upper, lower, min, max, ...).  A block
// becomes a BLOCK named by its type, and each label nests one more BLOCK:
//
//	material "fuel" { density = 10.4 }
//
// reads as material.fuel.density.  Labeled blocks of the same type share
// the type BLOCK.
//
// # Related Packages
//
//   - github.com/signadot/paramtree/encode - write trees
//   - github.com/signadot/paramtree/ctyval - cty conversion used for HCL
package parse
