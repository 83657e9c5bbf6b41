package param

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value holds exactly one of bool, float64, string, int64 or *Handle.
// The zero Value holds nothing and has InvalidKind.
type Value struct {
	kind Kind
	b    bool
	f    float64
	s    string
	i    int64
	h    *Handle
}

func BoolValue(v bool) Value { return Value{kind: BoolKind, b: v} }

func FloatValue(v float64) Value { return Value{kind: FloatKind, f: v} }

func StringValue(v string) Value { return Value{kind: StringKind, s: v} }

func IntValue(v int64) Value { return Value{kind: IntKind, i: v} }

func HandleValue(h *Handle) Value { return Value{kind: UserDataKind, h: h} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsValid() bool { return v.kind != InvalidKind }

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: value of type %s requested as %s", ErrTypeMismatch, v.kind, want)
}

func (v Value) Bool() (bool, error) {
	if v.kind != BoolKind {
		return false, v.mismatch(BoolKind)
	}
	return v.b, nil
}

func (v Value) Float() (float64, error) {
	if v.kind != FloatKind {
		return 0, v.mismatch(FloatKind)
	}
	return v.f, nil
}

// Str returns the string held by v.  It is not named String so that
// Value can implement fmt.Stringer.
func (v Value) Str() (string, error) {
	if v.kind != StringKind {
		return "", v.mismatch(StringKind)
	}
	return v.s, nil
}

func (v Value) Int() (int64, error) {
	if v.kind != IntKind {
		return 0, v.mismatch(IntKind)
	}
	return v.i, nil
}

func (v Value) Handle() (*Handle, error) {
	if v.kind != UserDataKind {
		return nil, v.mismatch(UserDataKind)
	}
	return v.h, nil
}

// String renders the value for the text dump.  Strings are quoted.
func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case FloatKind:
		return formatFloat(v.f)
	case StringKind:
		return strconv.Quote(v.s)
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case UserDataKind:
		return v.h.String()
	default:
		return ""
	}
}

// Equal reports whether v and o hold the same category and value.  Handles
// are compared by identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolKind:
		return v.b == o.b
	case FloatKind:
		return v.f == o.f
	case StringKind:
		return v.s == o.s
	case IntKind:
		return v.i == o.i
	case UserDataKind:
		return v.h == o.h
	}
	return true
}

// valueOf builds the Value for a scalar Go value.  The kind is taken from
// the reflect kind so that named types over the builtin ones work.
func valueOf[T Scalar](v T) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// wraps above MaxInt64, see FromUint
		return IntValue(int64(rv.Uint()))
	}
	panic("param: impossible scalar kind " + rv.Kind().String())
}

// scalarKindOf returns the node kind a Go scalar type maps to.
func scalarKindOf[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return BoolKind
	case reflect.String:
		return StringKind
	case reflect.Float32, reflect.Float64:
		return FloatKind
	default:
		return IntKind
	}
}

// convert extracts v as a T, checking the category and integer range.
func convert[T Scalar](v Value) (T, error) {
	var res T
	rv := reflect.ValueOf(&res).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		b, err := v.Bool()
		if err != nil {
			return res, err
		}
		rv.SetBool(b)
	case reflect.String:
		s, err := v.Str()
		if err != nil {
			return res, err
		}
		rv.SetString(s)
	case reflect.Float32, reflect.Float64:
		f, err := v.Float()
		if err != nil {
			return res, err
		}
		if rv.OverflowFloat(f) {
			return res, fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, f, rv.Type())
		}
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := v.Int()
		if err != nil {
			return res, err
		}
		if rv.OverflowInt(i) {
			return res, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, i, rv.Type())
		}
		rv.SetInt(i)
	default:
		i, err := v.Int()
		if err != nil {
			return res, err
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return res, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, i, rv.Type())
		}
		rv.SetUint(uint64(i))
	}
	return res, nil
}
