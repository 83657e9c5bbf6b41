package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/paramtree/param"
)

// Text returns a line diff of the text dumps of from and to, with both
// trees sorted first.  Lines are prefixed "  ", "- " or "+ ".  The result
// is empty when the dumps are identical.
func Text(from, to *param.Node) string {
	f, t := from.Clone(), to.Clone()
	f.SortRecursive()
	t.SortRecursive()
	fs, ts := f.DumpString(), t.DumpString()
	if fs == ts {
		return ""
	}
	return lineDiff(fs, ts)
}

func lineDiff(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
