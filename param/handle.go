package param

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

var handleSeq atomic.Uint64

// Handle is an opaque reference to caller data stored in a USER_DATA node.
// The tree never looks inside; copies of a node share the same *Handle so
// the referent stays shared and lives as long as anyone references it.
type Handle struct {
	v   any
	seq uint64 // creation order, orders distinct handles
}

func NewHandle(v any) *Handle {
	return &Handle{v: v, seq: handleSeq.Add(1)}
}

// Value returns the referenced data.
func (h *Handle) Value() any {
	if h == nil {
		return nil
	}
	return h.v
}

// IsNil reports whether h references nothing, including a typed nil
// pointer, map, slice, func, chan or interface.
func (h *Handle) IsNil() bool {
	if h == nil || h.v == nil {
		return true
	}
	rv := reflect.ValueOf(h.v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (h *Handle) order() uint64 {
	if h == nil {
		return 0
	}
	return h.seq
}

func (h *Handle) String() string {
	if h.IsNil() {
		return "<user data: nil>"
	}
	return fmt.Sprintf("<user data: %T>", h.v)
}

// HandleAs narrows the data referenced by h to T, which may be an
// interface (a capability) or a concrete type.
func HandleAs[T any](h *Handle) (T, bool) {
	res, ok := h.Value().(T)
	return res, ok
}
