package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/paramtree/param"
)

// MustString returns the text dump of node without the final newline.
func MustString(node *param.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
