package param

// Truth reports whether n is "truthy": true booleans, non-zero numbers,
// non-empty strings, non-nil user data and composites with children.
func Truth(n *Node) bool {
	switch n.kind {
	case BlockKind, ArrayKind:
		return len(n.params) != 0
	case StringKind:
		return n.value.s != ""
	case IntKind:
		return n.value.i != 0
	case FloatKind:
		return n.value.f != 0
	case BoolKind:
		return n.value.b
	case UserDataKind:
		return !n.value.h.IsNil()
	}
	return false
}
