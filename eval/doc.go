// Package eval expands expressions embedded in parameter trees.
//
// Strings may embed expressions written in the expr language
// (github.com/expr-lang/expr):
//
//   - "$[expr]" anywhere in a string is replaced by the rendered result
//   - a string which is exactly ".[expr]" is replaced by a node holding the
//     typed result, so ".[n * 2]" becomes an INTEGER
//
// Inside a "$[...]" or ".[...]", a backslash escapes the next character,
// so "\]" is a literal bracket.
//
// # Usage
//
//	env := eval.Env{"n": 4}
//	s, err := eval.ExpandString("cells-$[n*n]", env) // "cells-16"
//	expanded, err := eval.ExpandNode(deck, env)
//
// Expressions can also reach into the tree being expanded with getpath,
// listpath and whereami, and into the process environment with getenv.
package eval
