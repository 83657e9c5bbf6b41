// Package format names the input and output formats of parameter trees.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, ok := format.FromSuffix("deck.hcl")
//
// Not every format works in both directions: HCL and TOML are input only,
// the text dump is output only.
//
// # Related Packages
//
//   - github.com/signadot/paramtree/parse - read trees
//   - github.com/signadot/paramtree/encode - write trees
package format
