package param

import (
	"errors"
	"testing"
)

type shape interface {
	Area() float64
}

type square struct{ side float64 }

func (s *square) Area() float64 { return s.side * s.side }

type circle struct{ r float64 }

func (c *circle) Area() float64 { return 3 * c.r * c.r }

func TestGetDerivedParam(t *testing.T) {
	b := NewBlock("shapes")
	sq := &square{side: 2}
	b.AddUserData("sq", sq)

	got, err := GetDerivedParam[shape, *square](b, "sq", true)
	if err != nil {
		t.Fatal(err)
	}
	if got != sq {
		t.Errorf("got %p, want %p", got, sq)
	}

	_, err = GetDerivedParam[shape, *circle](b, "sq", true)
	if !errors.Is(err, ErrDowncast) {
		t.Errorf("got %v, want ErrDowncast", err)
	}
}

func TestGetUserParam(t *testing.T) {
	b := NewBlock("b")
	b.AddUserData("sq", &square{side: 3})
	b.AddUserData("null", (*square)(nil))
	AddValue(b, "num", 1)

	s, err := GetUserParam[shape](b, "sq", true)
	if err != nil {
		t.Fatal(err)
	}
	if s.Area() != 9 {
		t.Errorf("Area() = %v", s.Area())
	}

	tests := []struct {
		name  string
		param string
		check bool
		want  error
	}{
		{"missing", "none", true, ErrNotFound},
		{"not user data", "num", true, ErrTypeMismatch},
		{"null checked", "null", true, ErrNullHandle},
		{"null unchecked", "null", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetUserParam[shape](b, tt.param, tt.check)
			if tt.want == nil {
				if err != nil || got != nil {
					t.Errorf("got %v, %v", got, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	_, err = GetUserParam[*circle](b, "sq", true)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("wrong concrete type: got %v", err)
	}
}

func TestHandleShared(t *testing.T) {
	h := NewHandle(&square{side: 1})
	a := NewHandleNode("a", h)
	b := NewUserData("b", h)
	va, _ := a.Value()
	vb, _ := b.Value()
	ha, _ := va.Handle()
	hb, _ := vb.Handle()
	if ha != hb {
		t.Errorf("handles differ")
	}
	if !va.Equal(vb) {
		t.Errorf("values with one handle not equal")
	}
	if got := ha.String(); got != "<user data: *param.square>" {
		t.Errorf("String() = %q", got)
	}
}
