// Package encode writes parameter trees as text dumps, JSON or YAML.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout,
//		encode.EncodeFormat(format.JSONFormat),
//		encode.EncodeColors(encode.NewColors()))
//
// Without colors the text format is exactly param's RecursiveDumpToString
// and wire JSON is exactly RecursiveDumpToJSON.  USER_DATA has no JSON or
// YAML form.
//
// # Related Packages
//
//   - github.com/signadot/paramtree/format - format names
//   - github.com/signadot/paramtree/parse - the reverse direction
package encode
