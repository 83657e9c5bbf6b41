package gomap

import (
	"reflect"
	"strings"
)

const tagName = "param"

type fieldInfo struct {
	name      string
	index     int
	omitEmpty bool
	inline    bool
}

// structFields returns the mapped fields of struct type ty in declaration
// order.
func structFields(ty reflect.Type) []fieldInfo {
	res := make([]fieldInfo, 0, ty.NumField())
	for i := range ty.NumField() {
		f := ty.Field(i)
		tag, hasTag := f.Tag.Lookup(tagName)
		if tag == "-" {
			continue
		}
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fi := fieldInfo{name: name, index: i}
		for _, o := range strings.Split(opts, ",") {
			switch o {
			case "omitempty":
				fi.omitEmpty = true
			case "inline":
				fi.inline = true
			}
		}
		if f.Anonymous && !hasTag && f.Type.Kind() == reflect.Struct {
			fi.inline = true
		}
		if fi.name == "" {
			fi.name = f.Name
		}
		if !fi.inline && !f.IsExported() {
			continue
		}
		res = append(res, fi)
	}
	return res
}
