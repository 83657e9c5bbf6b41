// Package mergeop patches parameter trees.
//
// Trees are rendered to JSON, patched with an RFC 6902 JSON patch
// ([Patch]) or an RFC 7386 merge patch ([Merge]) and parsed back.  The
// result keeps the root name and error origin scope of the input, but
// block keys come back sorted.  Trees holding user data cannot be
// patched.
//
// Operations are also available by name through [Lookup] and [Apply]:
//
//   - pass: returns the document unchanged
//   - json-patch: argument is the ARRAY of RFC 6902 operations
//   - merge-patch: argument is the overlay
package mergeop
