package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/paramtree/encode"
	"github.com/signadot/paramtree/param"
)

// Logf writes a formatted message to stderr.  Trees are rendered with the
// text dump, native maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *param.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
