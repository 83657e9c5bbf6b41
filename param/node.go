package param

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Scalar is the set of Go types a scalar node can be built from and
// extracted to.
type Scalar interface {
	~bool | ~string | Integer | Float
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Node is a parameter tree node.  A node either holds a value (scalar and
// USER_DATA kinds) or a list of child parameters (BLOCK and ARRAY kinds),
// never both.  A node exclusively owns its children.
type Node struct {
	kind   Kind
	name   string
	value  *Value
	params []*Node
	scope  string
}

// NewBlock returns an empty BLOCK node.
func NewBlock(name string) *Node {
	return &Node{kind: BlockKind, name: name, scope: DefaultScope}
}

// New returns a scalar node holding v.  INTEGER storage is int64, so
// unsigned values above MaxInt64 wrap; use FromUint to have them rejected.
func New[T Scalar](name string, v T) *Node {
	val := valueOf(v)
	return &Node{kind: val.kind, name: name, value: &val, scope: DefaultScope}
}

// NewUserData returns a USER_DATA node referencing v.  If v is already a
// *Handle it is stored as is, sharing the referent.
func NewUserData(name string, v any) *Node {
	h, ok := v.(*Handle)
	if !ok {
		h = NewHandle(v)
	}
	return NewHandleNode(name, h)
}

func NewHandleNode(name string, h *Handle) *Node {
	val := HandleValue(h)
	return &Node{kind: UserDataKind, name: name, value: &val, scope: DefaultScope}
}

// NewArray returns an ARRAY node whose children are scalar nodes named by
// their index.
func NewArray[T Scalar](name string, vs []T) *Node {
	res := &Node{kind: ArrayKind, name: name, scope: DefaultScope}
	res.params = make([]*Node, len(vs))
	for i, v := range vs {
		res.params[i] = New(strconv.Itoa(i), v)
	}
	return res
}

func (n *Node) Type() Kind { return n.kind }

func (n *Node) TypeName() string { return n.kind.String() }

func (n *Node) Name() string { return n.name }

// IsScalar reports whether n holds a BOOLEAN, FLOAT, STRING or INTEGER.
func (n *Node) IsScalar() bool { return n.kind.IsScalar() }

func (n *Node) HasValue() bool { return n.value != nil }

// Value returns the value held by n.
func (n *Node) Value() (Value, error) {
	if n.value == nil {
		return Value{}, n.errorf("GetValue", ErrStructure, "value not available for block type %s", n.kind)
	}
	return *n.value, nil
}

func (n *Node) NumParameters() int { return len(n.params) }

// Parameters returns the children of n in order.  The returned slice is a
// copy, the nodes are not.
func (n *Node) Parameters() []*Node {
	return slices.Clone(n.params)
}

// All iterates over the children of n.
func (n *Node) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, p := range n.params {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (n *Node) index(name string) int {
	for i, p := range n.params {
		if p.name == name {
			return i
		}
	}
	return -1
}

// Has reports whether n has a child called name.
func (n *Node) Has(name string) bool {
	return n.index(name) != -1
}

// GetParam returns the first child called name.
func (n *Node) GetParam(name string) (*Node, error) {
	i := n.index(name)
	if i == -1 {
		return nil, &Error{
			Scope: n.ErrorOriginScope(),
			Op:    "GetParam",
			Param: name,
			Msg:   "parameter not present in block " + strconv.Quote(n.name),
			Err:   ErrNotFound,
		}
	}
	return n.params[i], nil
}

// GetParamAt returns the child at index i.
func (n *Node) GetParamAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.params) {
		return nil, n.errorf("GetParamAt", ErrNotFound,
			"index %d out of range for block %q with %d parameters", i, n.name, len(n.params))
	}
	return n.params[i], nil
}

// AddParameter appends child to n.  n takes ownership of child, which must
// not be added anywhere else; add child.Clone() for a copy.
func (n *Node) AddParameter(child *Node) error {
	if !n.kind.IsComposite() {
		return n.errorf("AddParameter", ErrStructure, "cannot add parameters to block type %s", n.kind)
	}
	if child == nil {
		return n.errorf("AddParameter", ErrStructure, "nil parameter")
	}
	if child.contains(n) {
		return n.errorf("AddParameter", ErrStructure, "parameter %q contains block %q", child.name, n.name)
	}
	n.params = append(n.params, child)
	return nil
}

func (n *Node) contains(o *Node) bool {
	if n == o {
		return true
	}
	for _, p := range n.params {
		if p.contains(o) {
			return true
		}
	}
	return false
}

// AddValue builds a scalar node and appends it to n.
func AddValue[T Scalar](n *Node, name string, v T) error {
	return n.AddParameter(New(name, v))
}

// AddUserData builds a USER_DATA node and appends it to n.
func (n *Node) AddUserData(name string, v any) error {
	return n.AddParameter(NewUserData(name, v))
}

func (n *Node) SetBlockName(name string) {
	n.name = name
}

// ChangeToArray turns a BLOCK into an ARRAY.  Homogeneity of the existing
// children is checked when values are extracted, not here.
func (n *Node) ChangeToArray() error {
	if !n.kind.IsComposite() {
		return n.errorf("ChangeToArray", ErrStructure, "cannot change block type %s to %s", n.kind, ArrayKind)
	}
	n.kind = ArrayKind
	return nil
}

// SortParameters orders the children by name.  The sort is stable so
// children with equal names keep their relative order.
func (n *Node) SortParameters() {
	slices.SortStableFunc(n.params, func(a, b *Node) int {
		return strings.Compare(a.name, b.name)
	})
}

func (n *Node) SetErrorOriginScope(scope string) {
	n.scope = scope
}

func (n *Node) ErrorOriginScope() string {
	if n.scope == "" {
		return DefaultScope
	}
	return n.scope
}

// Clone returns a deep copy of n.  User data handles are shared, not
// copied.
func (n *Node) Clone() *Node {
	res := &Node{
		kind:  n.kind,
		name:  n.name,
		scope: n.scope,
	}
	if n.value != nil {
		v := *n.value
		res.value = &v
	}
	if n.params != nil {
		res.params = make([]*Node, len(n.params))
		for i, p := range n.params {
			res.params[i] = p.Clone()
		}
	}
	return res
}

// Move returns a node owning the contents of n and leaves n an empty,
// unnamed BLOCK.
func (n *Node) Move() *Node {
	res := &Node{}
	*res = *n
	*n = Node{kind: BlockKind, scope: DefaultScope}
	return res
}
