package param

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes are ordered by kind rank, then name, then value or children.
// User data handles compare equal only when identical.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.kind), rank(b.kind)); c != 0 {
		return c
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	switch a.kind {
	case BoolKind:
		return compareBools(a.value.b, b.value.b)
	case IntKind:
		return cmp.Compare(a.value.i, b.value.i)
	case FloatKind:
		return cmp.Compare(a.value.f, b.value.f)
	case StringKind:
		return strings.Compare(a.value.s, b.value.s)
	case UserDataKind:
		if a.value.h == b.value.h {
			return 0
		}
		if c := strings.Compare(a.value.h.String(), b.value.h.String()); c != 0 {
			return c
		}
		return cmp.Compare(a.value.h.order(), b.value.h.order())
	case ArrayKind, BlockKind:
		return compareParams(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Invalid < Bool < Int < Float < String < UserData < Array < Block
func rank(k Kind) int {
	switch k {
	case InvalidKind:
		return 0
	case BoolKind:
		return 1
	case IntKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case UserDataKind:
		return 5
	case ArrayKind:
		return 6
	case BlockKind:
		return 7
	}
	return 100
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareParams(a, b *Node) int {
	n := min(len(a.params), len(b.params))
	for i := range n {
		if c := Compare(a.params[i], b.params[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.params), len(b.params))
}
