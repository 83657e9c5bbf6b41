package param

import (
	"errors"
	"fmt"
	"reflect"
)

// GetValue returns the value of n as a T.
func GetValue[T Scalar](n *Node) (T, error) {
	var zero T
	if n.value == nil {
		return zero, n.errorf("GetValue", ErrStructure, "value not available for block type %s", n.kind)
	}
	res, err := convert[T](*n.value)
	if err != nil {
		return zero, &Error{Scope: n.ErrorOriginScope(), Op: "GetValue", Param: n.name, Err: err}
	}
	return res, nil
}

// GetParamValue returns the value of the child called name as a T.
func GetParamValue[T Scalar](n *Node, name string) (T, error) {
	var zero T
	p, err := n.GetParam(name)
	if err != nil {
		return zero, &Error{
			Scope: n.ErrorOriginScope(),
			Op:    fmt.Sprintf("GetParamValue[%s]", reflect.TypeFor[T]()),
			Param: name,
			Msg:   fmt.Sprintf("parameter not present in block %q", n.name),
			Err:   ErrNotFound,
		}
	}
	return GetValue[T](p)
}

// GetVectorValue returns the values of the ARRAY n as a []T.  All children
// must have the kind of the first child.
func GetVectorValue[T Scalar](n *Node) ([]T, error) {
	if n.kind != ArrayKind {
		return nil, n.errorf("GetVectorValue", ErrStructure,
			"invalid type requested for parameter %q of type %s", n.name, n.kind)
	}
	res := make([]T, 0, len(n.params))
	if len(n.params) == 0 {
		return res, nil
	}
	first := n.params[0]
	for _, p := range n.params {
		if p.kind != first.kind {
			return nil, n.errorf("GetVectorValue", ErrTypeMismatch,
				"parameter %q, cannot construct vector from block because the sub-parameters do not all have the same type: param %q is %s vs param %q is %s",
				n.name, p.name, p.kind, first.name, first.kind)
		}
	}
	if want := scalarKindOf[T](); first.kind != want {
		return nil, n.errorf("GetVectorValue", ErrTypeMismatch,
			"parameter %q holds %s elements, requested %s", n.name, first.kind, want)
	}
	for _, p := range n.params {
		v, err := GetValue[T](p)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// GetParamVectorValue returns the values of the ARRAY child called name.
func GetParamVectorValue[T Scalar](n *Node, name string) ([]T, error) {
	p, err := n.GetParam(name)
	if err != nil {
		return nil, err
	}
	return GetVectorValue[T](p)
}

// GetUserParam returns the user data of the child called name as a T.
// With check set, a nil handle is an error; otherwise it yields the zero T.
func GetUserParam[T any](n *Node, name string, check bool) (T, error) {
	var zero T
	op := fmt.Sprintf("GetUserParam[%s]", reflect.TypeFor[T]())
	p, err := n.GetParam(name)
	if err != nil {
		return zero, err
	}
	if p.kind != UserDataKind {
		return zero, &Error{
			Scope: n.ErrorOriginScope(),
			Op:    op,
			Param: name,
			Msg:   fmt.Sprintf("expected %s, got %s", UserDataKind, p.kind),
			Err:   ErrTypeMismatch,
		}
	}
	h, _ := p.value.Handle()
	if h.IsNil() {
		if check {
			return zero, &Error{Scope: n.ErrorOriginScope(), Op: op, Param: name, Msg: "user data is null", Err: ErrNullHandle}
		}
		return zero, nil
	}
	res, ok := HandleAs[T](h)
	if !ok {
		return zero, &Error{
			Scope: n.ErrorOriginScope(),
			Op:    op,
			Param: name,
			Msg:   fmt.Sprintf("user data of type %T is not a %s", h.Value(), reflect.TypeFor[T]()),
			Err:   ErrTypeMismatch,
		}
	}
	return res, nil
}

// GetDerivedParam fetches the child called name as a Base and then narrows
// it to Derived.  Base is typically an interface shared by the objects of a
// registry and Derived a concrete type or a richer interface.
func GetDerivedParam[Base, Derived any](n *Node, name string, check bool) (Derived, error) {
	var zero Derived
	base, err := GetUserParam[Base](n, name, check)
	if err != nil {
		return zero, err
	}
	if isNil(base) {
		return zero, nil
	}
	res, ok := any(base).(Derived)
	if !ok {
		return zero, &Error{
			Scope: n.ErrorOriginScope(),
			Op:    fmt.Sprintf("GetDerivedParam[%s, %s]", reflect.TypeFor[Base](), reflect.TypeFor[Derived]()),
			Param: name,
			Msg:   fmt.Sprintf("supplied object of type %T is not a %s", base, reflect.TypeFor[Derived]()),
			Err:   ErrDowncast,
		}
	}
	return res, nil
}

func isNil(v any) bool {
	return NewHandle(v).IsNil()
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
