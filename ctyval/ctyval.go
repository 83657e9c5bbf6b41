// Package ctyval converts between parameter trees and cty values, the value
// model of HCL expressions.
package ctyval

import (
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/paramtree/param"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// HandleType is the capsule type carrying USER_DATA handles through HCL
// evaluation.
var HandleType = cty.Capsule("user data", reflect.TypeOf(param.Handle{}))

// ToNode converts v to a node called name.  Whole numbers become INTEGER
// when they fit in 64 bits, other numbers FLOAT.  Objects and maps become
// BLOCKs with keys in lexical order; lists, sets and tuples become ARRAYs.
func ToNode(name string, v cty.Value) (*param.Node, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("%w: %q is null", param.ErrNotRepresentable, name)
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("%w: %q is unknown", param.ErrNotRepresentable, name)
	}
	v, _ = v.Unmark()
	ty := v.Type()
	switch {
	case ty == cty.String:
		return param.New(name, v.AsString()), nil
	case ty == cty.Bool:
		return param.New(name, v.True()), nil
	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return param.New(name, i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		return param.New(name, f), nil
	case ty.Equals(HandleType):
		return param.NewHandleNode(name, v.EncapsulatedValue().(*param.Handle)), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		res := param.NewArray[int](name, nil)
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			_, ev := it.Element()
			c, err := ToNode(fmt.Sprint(i), ev)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	case ty.IsObjectType() || ty.IsMapType():
		res := param.NewBlock(name)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			c, err := ToNode(k.AsString(), ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", k.AsString(), err)
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unsupported cty type %s", param.ErrNotRepresentable, ty.FriendlyName())
}

// FromNode converts n to a cty value.  BLOCKs become objects (the first of
// duplicate names wins) and ARRAYs become tuples.  USER_DATA is wrapped in
// a HandleType capsule.
func FromNode(n *param.Node) (cty.Value, error) {
	switch n.Type() {
	case param.BlockKind:
		if n.NumParameters() == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, n.NumParameters())
		for _, c := range n.All() {
			if _, dup := attrs[c.Name()]; dup {
				continue
			}
			v, err := FromNode(c)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[c.Name()] = v
		}
		return cty.ObjectVal(attrs), nil
	case param.ArrayKind:
		if n.NumParameters() == 0 {
			return cty.EmptyTupleVal, nil
		}
		elts := make([]cty.Value, 0, n.NumParameters())
		for _, c := range n.All() {
			v, err := FromNode(c)
			if err != nil {
				return cty.NilVal, err
			}
			elts = append(elts, v)
		}
		return cty.TupleVal(elts), nil
	}
	v, err := n.Value()
	if err != nil {
		return cty.NilVal, err
	}
	switch n.Type() {
	case param.BoolKind:
		b, _ := v.Bool()
		return cty.BoolVal(b), nil
	case param.IntKind:
		i, _ := v.Int()
		return cty.NumberIntVal(i), nil
	case param.FloatKind:
		f, _ := v.Float()
		if math.IsNaN(f) {
			return cty.NilVal, fmt.Errorf("%w: %q is NaN", param.ErrNotRepresentable, n.Name())
		}
		return cty.NumberFloatVal(f), nil
	case param.StringKind:
		s, _ := v.Str()
		return cty.StringVal(s), nil
	case param.UserDataKind:
		h, _ := v.Handle()
		if h == nil {
			h = param.NewHandle(nil)
		}
		return cty.CapsuleVal(HandleType, h), nil
	}
	return cty.NilVal, fmt.Errorf("%w: %s", param.ErrNotRepresentable, n.Type())
}

// FromGo converts a native Go value to cty by way of param.FromAny.
func FromGo(v any) (cty.Value, error) {
	n, err := param.FromAny("", v)
	if err != nil {
		return cty.NilVal, err
	}
	return FromNode(n)
}

// Variables converts vars to the variable table of an HCL evaluation
// context.
func Variables(vars map[string]any) (map[string]cty.Value, error) {
	res := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		cv, err := FromGo(v)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", k, err)
		}
		res[k] = cv
	}
	return res, nil
}
