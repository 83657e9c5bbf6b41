package libdiff

// Op is the kind of a Change.
type Op int

const (
	OpInsert Op = iota // present only in to
	OpDelete           // present only in from
	OpChange           // same kind, different value
	OpKind             // different kind
)

var opNames = [...]string{
	OpInsert: "insert",
	OpDelete: "delete",
	OpChange: "change",
	OpKind:   "kind",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

func (o Op) sigil() string {
	switch o {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	}
	return "~"
}
