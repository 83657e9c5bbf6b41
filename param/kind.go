package param

import "fmt"

// Kind tags what a Node holds.
type Kind int

const (
	InvalidKind  Kind = 0
	BoolKind     Kind = 1
	FloatKind    Kind = 3
	StringKind   Kind = 4
	IntKind      Kind = 5
	UserDataKind Kind = 6
	ArrayKind    Kind = 98
	BlockKind    Kind = 99
)

var kindNames = map[Kind]string{
	InvalidKind:  "INVALID_VALUE",
	BoolKind:     "BOOLEAN",
	FloatKind:    "FLOAT",
	StringKind:   "STRING",
	IntKind:      "INTEGER",
	UserDataKind: "USER_DATA",
	ArrayKind:    "ARRAY",
	BlockKind:    "BLOCK",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		InvalidKind,
		BoolKind,
		FloatKind,
		StringKind,
		IntKind,
		UserDataKind,
		ArrayKind,
		BlockKind,
	}
}

// IsScalar reports whether k is one of the four plain value kinds.
// UserDataKind is a leaf but not a scalar.
func (k Kind) IsScalar() bool {
	switch k {
	case BoolKind, FloatKind, StringKind, IntKind:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether nodes of kind k carry a value.
func (k Kind) IsLeaf() bool {
	return k.IsScalar() || k == UserDataKind
}

// IsComposite reports whether nodes of kind k carry children.
func (k Kind) IsComposite() bool {
	return k == ArrayKind || k == BlockKind
}
