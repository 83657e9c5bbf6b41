package param

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(n *Node) []string {
	var res []string
	for _, p := range n.All() {
		res = append(res, p.Name())
	}
	return res
}

func TestRootScenario(t *testing.T) {
	root := NewBlock("root")
	if err := AddValue(root, "count", 5); err != nil {
		t.Fatal(err)
	}
	if err := root.AddParameter(NewArray("values", []float64{1.5, 2.5, 3.5})); err != nil {
		t.Fatal(err)
	}
	if !root.Has("count") {
		t.Errorf("expected count")
	}
	count, err := GetParamValue[int](root, "count")
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
	values, err := GetParamVectorValue[float64](root, "values")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1.5, 2.5, 3.5}, values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	_, err = root.GetParam("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetParam(missing) = %v, want ErrNotFound", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		got, err := GetValue[bool](New("b", true))
		if err != nil || !got {
			t.Errorf("got %v, %v", got, err)
		}
	})
	t.Run("float", func(t *testing.T) {
		got, err := GetValue[float64](New("f", 0.125))
		if err != nil || got != 0.125 {
			t.Errorf("got %v, %v", got, err)
		}
	})
	t.Run("string", func(t *testing.T) {
		got, err := GetValue[string](New("s", "a\tb"))
		if err != nil || got != "a\tb" {
			t.Errorf("got %q, %v", got, err)
		}
	})
	t.Run("int64", func(t *testing.T) {
		got, err := GetValue[int64](New("i", int64(-1)<<40))
		if err != nil || got != int64(-1)<<40 {
			t.Errorf("got %v, %v", got, err)
		}
	})
	t.Run("named", func(t *testing.T) {
		type level uint16
		got, err := GetValue[level](New("l", level(7)))
		if err != nil || got != 7 {
			t.Errorf("got %v, %v", got, err)
		}
	})
}

func TestKinds(t *testing.T) {
	tests := []struct {
		node *Node
		kind Kind
	}{
		{New("b", false), BoolKind},
		{New("f", float32(1)), FloatKind},
		{New("s", ""), StringKind},
		{New("i", uint8(1)), IntKind},
		{NewUserData("u", struct{}{}), UserDataKind},
		{NewArray[int]("a", nil), ArrayKind},
		{NewBlock("blk"), BlockKind},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.node.Type(); got != tt.kind {
				t.Errorf("Type() = %s, want %s", got, tt.kind)
			}
			if got := tt.node.TypeName(); got != tt.kind.String() {
				t.Errorf("TypeName() = %s", got)
			}
			if tt.node.HasValue() && tt.node.NumParameters() != 0 {
				t.Errorf("node has both a value and children")
			}
			if got, want := tt.node.HasValue(), !tt.kind.IsComposite(); got != want {
				t.Errorf("HasValue() = %v, want %v", got, want)
			}
		})
	}
}

func TestExtractionStrict(t *testing.T) {
	tests := []struct {
		name string
		get  func() error
		want error
	}{
		{"int as float", func() error { _, err := GetValue[float64](New("x", 1)); return err }, ErrTypeMismatch},
		{"float as int", func() error { _, err := GetValue[int](New("x", 1.0)); return err }, ErrTypeMismatch},
		{"string as bool", func() error { _, err := GetValue[bool](New("x", "true")); return err }, ErrTypeMismatch},
		{"int8 overflow", func() error { _, err := GetValue[int8](New("x", 300)); return err }, ErrTypeMismatch},
		{"negative uint", func() error { _, err := GetValue[uint](New("x", -1)); return err }, ErrTypeMismatch},
		{"block value", func() error { _, err := GetValue[int](NewBlock("x")); return err }, ErrStructure},
		{"fits int8", func() error { _, err := GetValue[int8](New("x", -128)); return err }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestArrayHomogeneity(t *testing.T) {
	arr := NewBlock("mixed")
	AddValue(arr, "0", 1)
	AddValue(arr, "1", "two")
	if err := arr.ChangeToArray(); err != nil {
		t.Fatal(err)
	}
	_, err := GetVectorValue[int](arr)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
	for _, k := range []string{"INTEGER", "STRING"} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("error %q does not name %s", err, k)
		}
	}

	got, err := GetVectorValue[string](NewArray[string]("empty", nil))
	if err != nil || len(got) != 0 {
		t.Errorf("empty array: %v, %v", got, err)
	}

	_, err = GetVectorValue[int](NewBlock("blk"))
	if !errors.Is(err, ErrStructure) {
		t.Errorf("block: got %v, want ErrStructure", err)
	}

	_, err = GetVectorValue[string](NewArray("ints", []int{1, 2}))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("wrong element type: got %v, want ErrTypeMismatch", err)
	}
}

func TestChangeToArray(t *testing.T) {
	if err := New("x", 1).ChangeToArray(); !errors.Is(err, ErrStructure) {
		t.Errorf("scalar: got %v, want ErrStructure", err)
	}
	b := NewBlock("b")
	AddValue(b, "x", 1)
	AddValue(b, "y", 2)
	if err := b.ChangeToArray(); err != nil {
		t.Fatal(err)
	}
	if b.Type() != ArrayKind {
		t.Errorf("Type() = %s", b.Type())
	}
	got, err := GetVectorValue[int](b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Error(diff)
	}
}

func TestFirstMatch(t *testing.T) {
	b := NewBlock("b")
	AddValue(b, "a", 1)
	AddValue(b, "b", 2)
	AddValue(b, "a", 3)
	got, err := GetParamValue[int](b, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got %d, want first match 1", got)
	}
}

func TestSortParameters(t *testing.T) {
	b := NewBlock("b")
	AddValue(b, "c", 0)
	AddValue(b, "a", 1)
	AddValue(b, "b", 0)
	AddValue(b, "a", 2)
	b.SortParameters()
	want := []string{"a", "a", "b", "c"}
	if diff := cmp.Diff(want, names(b)); diff != "" {
		t.Errorf("sorted (-want +got):\n%s", diff)
	}
	first, _ := b.GetParamAt(0)
	second, _ := b.GetParamAt(1)
	if v, _ := GetValue[int](first); v != 1 {
		t.Errorf("stable sort broken: first a = %d", v)
	}
	if v, _ := GetValue[int](second); v != 2 {
		t.Errorf("stable sort broken: second a = %d", v)
	}
	once := b.Clone()
	b.SortParameters()
	if !Equal(once, b) {
		t.Errorf("sort not idempotent")
	}
}

func TestAddParameter(t *testing.T) {
	tests := []struct {
		name   string
		parent *Node
		child  *Node
		want   error
	}{
		{"block", NewBlock("p"), New("c", 1), nil},
		{"array", NewArray[int]("p", nil), New("0", 1), nil},
		{"scalar", New("p", 1), New("c", 1), ErrStructure},
		{"user data", NewUserData("p", 1), New("c", 1), ErrStructure},
		{"nil", NewBlock("p"), nil, ErrStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.AddParameter(tt.child)
			if tt.want == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if tt.parent.HasValue() && tt.parent.NumParameters() != 0 {
				t.Errorf("exclusivity broken")
			}
		})
	}
	t.Run("cycle", func(t *testing.T) {
		a := NewBlock("a")
		b := NewBlock("b")
		if err := a.AddParameter(b); err != nil {
			t.Fatal(err)
		}
		if err := b.AddParameter(a); !errors.Is(err, ErrStructure) {
			t.Errorf("got %v, want ErrStructure", err)
		}
	})
}

func TestCloneIsolation(t *testing.T) {
	root := NewBlock("root")
	inner := NewBlock("inner")
	AddValue(inner, "x", 1)
	root.AddParameter(inner)
	shared := &struct{ n int }{n: 1}
	root.AddUserData("data", shared)

	c := root.Clone()
	if !Equal(root, c) {
		t.Fatalf("clone differs:\n%s\n%s", root.DumpString(), c.DumpString())
	}
	ci, _ := c.GetParam("inner")
	cx, _ := ci.GetParam("x")
	cx.SetBlockName("renamed")
	AddValue(ci, "y", 2)

	if !inner.Has("x") || inner.Has("renamed") || inner.NumParameters() != 1 {
		t.Errorf("original modified:\n%s", root.DumpString())
	}
	h, err := GetUserParam[*struct{ n int }](c, "data", true)
	if err != nil {
		t.Fatal(err)
	}
	if h != shared {
		t.Errorf("user data was copied, want shared")
	}
}

func TestMove(t *testing.T) {
	a := NewBlock("a")
	AddValue(a, "x", 1)
	b := a.Move()
	if b.Name() != "a" || b.NumParameters() != 1 {
		t.Errorf("moved node: %s", b.DumpString())
	}
	if a.Name() != "" || a.Type() != BlockKind || a.NumParameters() != 0 {
		t.Errorf("source not reset: %s", a.DumpString())
	}
}

func TestAllStops(t *testing.T) {
	b := NewBlock("b")
	for _, n := range []string{"x", "y", "z"} {
		AddValue(b, n, 0)
	}
	var got []int
	for i := range b.All() {
		if i == 2 {
			break
		}
		got = append(got, i)
	}
	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Error(diff)
	}
}

func TestErrorScope(t *testing.T) {
	b := NewBlock("root")
	if got := b.ErrorOriginScope(); got != DefaultScope {
		t.Errorf("default scope = %q", got)
	}
	b.SetErrorOriginScope("Solver")
	_, err := b.GetParam("missing")
	want := `Solver: GetParam: parameter "missing": parameter not present in block "root"`
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %s", err, want)
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Scope != "Solver" || pe.Param != "missing" {
		t.Errorf("bad *Error %#v", pe)
	}
	child := New("x", 1)
	b.AddParameter(child)
	if got := child.ErrorOriginScope(); got != DefaultScope {
		t.Errorf("scope inherited: %q", got)
	}
	_, err = GetParamValue[int](b, "nope")
	if !strings.HasPrefix(err.Error(), `Solver: GetParamValue[int]: parameter "nope"`) {
		t.Errorf("got %v", err)
	}
}

func TestRequire(t *testing.T) {
	b := NewBlock("b")
	b.AddParameter(NewBlock("opts"))
	if err := b.RequireBlockTypeIs(BlockKind); err != nil {
		t.Error(err)
	}
	if err := b.RequireBlockTypeIs(ArrayKind); !errors.Is(err, ErrStructure) {
		t.Errorf("got %v", err)
	}
	if err := b.RequireParameterBlockTypeIs("opts", BlockKind); err != nil {
		t.Error(err)
	}
	if err := b.RequireParameterBlockTypeIs("opts", ArrayKind); !errors.Is(err, ErrStructure) {
		t.Errorf("got %v", err)
	}
	if err := b.RequireParameterBlockTypeIs("none", BlockKind); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if err := b.RequireParameter("opts"); err != nil {
		t.Error(err)
	}
	if err := b.RequireParameter("none"); !IsNotFound(err) {
		t.Errorf("got %v", err)
	}
}
