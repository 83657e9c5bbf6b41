// Package paramtree matches parameter trees against patterns.
//
// The tree itself lives in package param; parse and encode convert it
// from and to JSON, YAML, HCL and TOML; kpath addresses nodes within it.
package paramtree
