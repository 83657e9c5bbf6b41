// Package libdiff computes differences between parameter trees.
//
// [Diff] produces a list of [Change] values addressed by kinded paths.
// Block children are matched by name and array elements by a summary of
// their kind and value, each via a sequence diff.  [Text] produces a line
// diff of the text dumps.
package libdiff
