package gomap

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/paramtree/kpath"
	"github.com/signadot/paramtree/param"
)

// Marshaler is implemented by types which encode themselves.
type Marshaler interface {
	ToParam(name string) (*param.Node, error)
}

var marshalerType = reflect.TypeFor[Marshaler]()

// Encode converts v to a tree whose root is called name.
func Encode(name string, v any) (*param.Node, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot encode nil", Err: param.ErrNotRepresentable}
	}
	return encode(name, reflect.ValueOf(v), "")
}

func encode(name string, val reflect.Value, path string) (*param.Node, error) {
	if val.Type().Implements(marshalerType) && !(val.Kind() == reflect.Pointer && val.IsNil()) {
		res, err := val.Interface().(Marshaler).ToParam(name)
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: "ToParam failed", Err: err}
		}
		return res, nil
	}
	if val.Type() == nodeType {
		n := val.Interface().(*param.Node)
		if n == nil {
			return nil, &MarshalError{FieldPath: path, Message: "nil node", Err: param.ErrNotRepresentable}
		}
		res := n.Clone()
		res.SetBlockName(name)
		return res, nil
	}
	switch val.Kind() {
	case reflect.Bool:
		return param.New(name, val.Bool()), nil
	case reflect.String:
		return param.New(name, val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return param.New(name, val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		res, err := param.FromUint(name, val.Uint())
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: "unsigned value out of range", Err: err}
		}
		return res, nil
	case reflect.Float32, reflect.Float64:
		return param.New(name, val.Float()), nil
	case reflect.Pointer:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: path, Message: "nil pointer", Err: param.ErrNotRepresentable}
		}
		if val.Elem().Kind() == reflect.Struct {
			return encode(name, val.Elem(), path)
		}
		return param.NewUserData(name, val.Interface()), nil
	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: path, Message: "nil interface", Err: param.ErrNotRepresentable}
		}
		return encode(name, val.Elem(), path)
	case reflect.Struct:
		res := param.NewBlock(name)
		if err := encodeStruct(res, val, path); err != nil {
			return nil, err
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return param.NewArray[int](name, nil), nil
		}
		res := param.NewArray[int](name, nil)
		for i := range val.Len() {
			c, err := encode(fmt.Sprint(i), val.Index(i), kpath.JoinIndex(path, i))
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, val.Len())
		for _, k := range val.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := param.NewBlock(name)
		for _, k := range keys {
			ev := val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key()))
			c, err := encode(k, ev, kpath.Join(path, k))
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return param.NewUserData(name, val.Interface()), nil
}

func encodeStruct(dst *param.Node, val reflect.Value, path string) error {
	for _, fi := range structFields(val.Type()) {
		fv := val.Field(fi.index)
		if fi.inline && fv.Kind() == reflect.Struct {
			if err := encodeStruct(dst, fv, path); err != nil {
				return err
			}
			continue
		}
		if fv.IsZero() && (fi.omitEmpty || isNilable(fv)) {
			continue
		}
		c, err := encode(fi.name, fv, kpath.Join(path, fi.name))
		if err != nil {
			return err
		}
		if err := dst.AddParameter(c); err != nil {
			return err
		}
	}
	return nil
}

func isNilable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
