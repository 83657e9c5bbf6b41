package param

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// FromAny builds a tree from a native Go value.
//
//   - bool, string, integer and float kinds become scalars
//   - maps with string keys become BLOCKs, keys in sorted order
//   - slices and arrays become ARRAYs with children named by index
//   - *Node values are cloned and renamed
//   - *Handle values and everything else become USER_DATA
//
// A nil value has no parameter form.
func FromAny(name string, v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, &Error{Scope: DefaultScope, Op: "FromAny", Param: name, Msg: "nil has no parameter form", Err: ErrNotRepresentable}
	case *Node:
		res := x.Clone()
		res.name = name
		return res, nil
	case *Handle:
		return NewHandleNode(name, x), nil
	}
	return fromReflect(name, reflect.ValueOf(v))
}

// FromUint returns an INTEGER node holding u.  Values above MaxInt64 do
// not fit INTEGER storage and give an ErrNotRepresentable error.
func FromUint(name string, u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, &Error{Scope: DefaultScope, Op: "FromUint", Param: name,
			Msg: fmt.Sprintf("%d overflows %s", u, IntKind), Err: ErrNotRepresentable}
	}
	return New(name, int64(u)), nil
}

func fromReflect(name string, rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return New(name, rv.Bool()), nil
	case reflect.String:
		return New(name, rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return New(name, rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint(name, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return New(name, rv.Float()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return nil, &Error{Scope: DefaultScope, Op: "FromAny", Param: name, Msg: "nil has no parameter form", Err: ErrNotRepresentable}
		}
		return FromAny(name, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		res := &Node{kind: ArrayKind, name: name, scope: DefaultScope}
		for i := range rv.Len() {
			c, err := FromAny(strconv.Itoa(i), rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.params = append(res.params, c)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := NewBlock(name)
		for _, k := range keys {
			c, err := FromAny(k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			res.params = append(res.params, c)
		}
		return res, nil
	}
	return NewUserData(name, rv.Interface()), nil
}

// ToAny converts the tree rooted at n to native Go values: map[string]any
// for BLOCKs, []any for ARRAYs, int64, float64, bool and string for
// scalars.  USER_DATA yields the referenced value.  When a BLOCK has
// duplicate names the first one wins, as with GetParam.
func ToAny(n *Node) (any, error) {
	switch n.kind {
	case BlockKind:
		res := make(map[string]any, len(n.params))
		for _, c := range n.params {
			if _, dup := res[c.name]; dup {
				continue
			}
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			res[c.name] = v
		}
		return res, nil
	case ArrayKind:
		res := make([]any, len(n.params))
		for i, c := range n.params {
			v, err := ToAny(c)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case BoolKind:
		return n.value.b, nil
	case IntKind:
		return n.value.i, nil
	case FloatKind:
		return n.value.f, nil
	case StringKind:
		return n.value.s, nil
	case UserDataKind:
		return n.value.h.Value(), nil
	}
	return nil, n.errorf("ToAny", ErrNotRepresentable, "parameter %q of type %s", n.name, n.kind)
}

// MustFromAny is FromAny for static values known to convert.
func MustFromAny(name string, v any) *Node {
	res, err := FromAny(name, v)
	if err != nil {
		panic(fmt.Sprintf("MustFromAny: %v", err))
	}
	return res
}
