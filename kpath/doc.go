// Package kpath provides kinded path parsing for parameter trees.
//
// Kinded paths encode both navigation and the expected composite kind in
// the syntax:
//   - .name - BLOCK child access by name (first match)
//   - [index] - ARRAY (or BLOCK) child access by position
//   - .* / [*] - Wildcards
//
// # Usage
//
//	kp, err := kpath.Parse("solver.groups[0].name")
//	fmt.Println(kp.String()) // solver.groups[0].name
//
// Names containing '.', '[', '*', '"' or spaces are double quoted:
//
//	materials."fuel.pin"[2]
//
// # Related Packages
//
//   - github.com/signadot/paramtree/param - parameter trees
package kpath
