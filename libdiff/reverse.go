package libdiff

// Reverse returns the changes turning to back into from, given the
// changes cs from Diff(from, to).  Array element paths are not
// renumbered, so the result is for display rather than application.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case OpInsert:
			r.Op = OpDelete
		case OpDelete:
			r.Op = OpInsert
		}
		res[i] = r
	}
	return res
}
