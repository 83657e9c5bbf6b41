// Package gomap binds parameter trees to Go values.
//
// # Decoding
//
// Decode fills a struct from a BLOCK.  Fields are matched to parameters by
// the name in their `param` tag, or by the field name when there is no tag.
// A tag of "-" skips the field.  Parameters missing from the block leave
// the field untouched; use `validate:"required"` to insist on them.
//
//	type Solver struct {
//		MaxIters int     `param:"max_iters" validate:"gt=0"`
//		Tol      float64 `param:"tol"`
//		Groups   []int   `param:"groups"`
//		Mesh     Mesh    `param:"mesh"` // USER_DATA
//	}
//
//	var s Solver
//	err := gomap.Decode(node, &s)
//
// After decoding, structs are checked with github.com/go-playground/validator
// using their `validate` tags.
//
// Types may take over their own conversion by implementing Unmarshaler or
// Marshaler.
//
// # Encoding
//
// Encode is the reverse: structs become BLOCKs in field order, slices become
// ARRAYs, maps become BLOCKs in key order.  Values with no parameter form
// (funcs, channels, interfaces to such) become USER_DATA.
package gomap
