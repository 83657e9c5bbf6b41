package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/kpath"
	"github.com/signadot/paramtree/param"
)

// Unmarshaler is implemented by types which decode themselves.
type Unmarshaler interface {
	FromParam(n *param.Node) error
}

var (
	validate        = validator.New()
	unmarshalerType = reflect.TypeFor[Unmarshaler]()
	nodeType        = reflect.TypeFor[*param.Node]()
)

// Decode fills the value pointed to by v from n and validates the result.
func Decode(n *param.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if err := decode(n, val.Elem(), ""); err != nil {
		return err
	}
	if debug.Map() {
		debug.Logf("decoded %s into %T\n", n.Name(), v)
	}
	return Validate(v)
}

// Validate runs struct validation on v, which may be a struct or a pointer
// to one.  Other values are accepted as is.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &UnmarshalError{FieldPath: verrs[0].Namespace(), Message: "validation failed", Err: err}
		}
		return &UnmarshalError{Message: "validation failed", Err: err}
	}
	return nil
}

func decode(n *param.Node, val reflect.Value, path string) error {
	if val.CanAddr() && val.Addr().Type().Implements(unmarshalerType) {
		if err := val.Addr().Interface().(Unmarshaler).FromParam(n); err != nil {
			return &UnmarshalError{FieldPath: path, Message: "FromParam failed", Err: err}
		}
		return nil
	}
	if val.Type() == nodeType {
		val.Set(reflect.ValueOf(n.Clone()))
		return nil
	}
	if n.Type() == param.UserDataKind {
		return decodeUserData(n, val, path)
	}
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return decode(n, val.Elem(), path)
	case reflect.Interface:
		if val.Type().NumMethod() != 0 {
			return typeError(path, val.Type().String(), n)
		}
		v, err := param.ToAny(n)
		if err != nil {
			return &UnmarshalError{FieldPath: path, Message: "cannot convert", Err: err}
		}
		val.Set(reflect.ValueOf(v))
		return nil
	case reflect.Struct:
		return decodeStruct(n, val, path)
	case reflect.Map:
		return decodeMap(n, val, path)
	case reflect.Slice:
		return decodeSlice(n, val, path)
	case reflect.Array:
		if n.NumParameters() != val.Len() || !n.Type().IsComposite() {
			return &TypeError{FieldPath: path, Message: fmt.Sprintf("expected %d parameters, got %s with %d", val.Len(), n.Type(), n.NumParameters())}
		}
		for i, c := range n.All() {
			if err := decode(c, val.Index(i), kpath.JoinIndex(path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return decodeScalar(n, val, path)
}

func decodeUserData(n *param.Node, val reflect.Value, path string) error {
	v, err := n.Value()
	if err != nil {
		return err
	}
	h, _ := v.Handle()
	if h.IsNil() {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	rv := reflect.ValueOf(h.Value())
	if !rv.Type().AssignableTo(val.Type()) {
		return &TypeError{
			FieldPath: path,
			Expected:  val.Type().String(),
			Actual:    rv.Type().String(),
			Err:       param.ErrTypeMismatch,
		}
	}
	val.Set(rv)
	return nil
}

func decodeStruct(n *param.Node, val reflect.Value, path string) error {
	if n.Type() != param.BlockKind {
		return typeError(path, param.BlockKind.String(), n)
	}
	for _, fi := range structFields(val.Type()) {
		fv := val.Field(fi.index)
		if fi.inline && fv.Kind() == reflect.Struct {
			if err := decodeStruct(n, fv, path); err != nil {
				return err
			}
			continue
		}
		c, err := n.GetParam(fi.name)
		if err != nil {
			continue
		}
		if err := decode(c, fv, kpath.Join(path, fi.name)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(n *param.Node, val reflect.Value, path string) error {
	if n.Type() != param.BlockKind {
		return typeError(path, param.BlockKind.String(), n)
	}
	ty := val.Type()
	if ty.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("map key type %s is not a string", ty.Key())}
	}
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(ty, n.NumParameters()))
	}
	for _, c := range n.All() {
		key := reflect.ValueOf(c.Name()).Convert(ty.Key())
		if val.MapIndex(key).IsValid() {
			continue
		}
		ev := reflect.New(ty.Elem()).Elem()
		if err := decode(c, ev, kpath.Join(path, c.Name())); err != nil {
			return err
		}
		val.SetMapIndex(key, ev)
	}
	return nil
}

func decodeSlice(n *param.Node, val reflect.Value, path string) error {
	if !n.Type().IsComposite() {
		return typeError(path, param.ArrayKind.String(), n)
	}
	res := reflect.MakeSlice(val.Type(), n.NumParameters(), n.NumParameters())
	for i, c := range n.All() {
		if err := decode(c, res.Index(i), kpath.JoinIndex(path, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func decodeScalar(n *param.Node, val reflect.Value, path string) error {
	switch val.Kind() {
	case reflect.Bool:
		b, err := param.GetValue[bool](n)
		if err != nil {
			return scalarError(path, val, n, err)
		}
		val.SetBool(b)
	case reflect.String:
		s, err := param.GetValue[string](n)
		if err != nil {
			return scalarError(path, val, n, err)
		}
		val.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := param.GetValue[int64](n)
		if err == nil && val.OverflowInt(i) {
			err = fmt.Errorf("%w: %d overflows %s", param.ErrTypeMismatch, i, val.Type())
		}
		if err != nil {
			return scalarError(path, val, n, err)
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := param.GetValue[int64](n)
		if err == nil && (i < 0 || val.OverflowUint(uint64(i))) {
			err = fmt.Errorf("%w: %d overflows %s", param.ErrTypeMismatch, i, val.Type())
		}
		if err != nil {
			return scalarError(path, val, n, err)
		}
		val.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, err := param.GetValue[float64](n)
		if err == nil && val.OverflowFloat(f) {
			err = fmt.Errorf("%w: %v overflows %s", param.ErrTypeMismatch, f, val.Type())
		}
		if err != nil {
			return scalarError(path, val, n, err)
		}
		val.SetFloat(f)
	default:
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported destination type %s", val.Type())}
	}
	return nil
}

func typeError(path, want string, n *param.Node) error {
	return &TypeError{FieldPath: path, Expected: want, Actual: n.Type().String(), Err: param.ErrTypeMismatch}
}

func scalarError(path string, val reflect.Value, n *param.Node, err error) error {
	return &TypeError{
		FieldPath: path,
		Expected:  val.Type().String(),
		Actual:    n.Type().String(),
		Err:       err,
	}
}
