package param

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrNotFound         = errors.New("parameter not found")
	ErrStructure        = errors.New("structural misuse")
	ErrNullHandle       = errors.New("null user data handle")
	ErrDowncast         = errors.New("downcast failure")
	ErrNotRepresentable = errors.New("not representable")
)

// DefaultScope is the diagnostic scope of a node which was never given one.
const DefaultScope = "Unknown Scope"

// Error is the error returned by every failing Node operation.  It carries
// the diagnostic scope of the node which detected the failure, the
// operation, and the parameter involved if any.
type Error struct {
	Scope string
	Op    string
	Param string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Scope)
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Param != "" {
		fmt.Fprintf(b, ": parameter %q", e.Param)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		var inner *Error
		if errors.As(e.Err, &inner) {
			b.WriteString(": ")
			b.WriteString(e.Err.Error())
		} else if e.Msg == "" {
			b.WriteString(": ")
			b.WriteString(e.Err.Error())
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (n *Node) errorf(op string, sentinel error, format string, args ...any) *Error {
	return &Error{
		Scope: n.ErrorOriginScope(),
		Op:    op,
		Msg:   fmt.Sprintf(format, args...),
		Err:   sentinel,
	}
}
