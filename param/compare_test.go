package param

import "testing"

func TestCompare(t *testing.T) {
	arr := func(vs ...int) *Node { return NewArray("a", vs) }
	blk := func(kv ...any) *Node {
		b := NewBlock("b")
		for i := 0; i < len(kv); i += 2 {
			AddValue(b, kv[i].(string), kv[i+1].(int))
		}
		return b
	}
	type cell struct{ x int }
	u1 := NewUserData("u", &cell{1})
	u2 := NewUserData("u", &cell{1})
	uStr := NewUserData("u", new(string))
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"Bool < Int", New("x", true), New("x", 1), -1},
		{"Int < Float", New("x", 1), New("x", 1.0), -1},
		{"Float < String", New("x", 1.0), New("x", "1"), -1},
		{"String < Array", New("x", "a"), arr(), -1},
		{"Array < Block", arr(), blk(), -1},

		{"name", New("a", 1), New("b", 1), -1},
		{"false < true", New("x", false), New("x", true), -1},
		{"ints", New("x", 1), New("x", 2), -1},
		{"floats", New("x", 2.5), New("x", 2.0), 1},
		{"strings", New("x", "a"), New("x", "a"), 0},

		{"short array", arr(1), arr(1, 2), -1},
		{"array element", arr(1, 3), arr(1, 2), 1},
		{"equal blocks", blk("a", 1), blk("a", 1), 0},
		{"block key", blk("a", 1), blk("b", 1), -1},
		{"block value", blk("a", 1), blk("a", 2), -1},
		{"same handle", u1, u1.Clone(), 0},
		{"handles by creation", u1, u2, -1},
		{"handle types", u2, uStr, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{New("x", 0), false},
		{New("x", 2), true},
		{New("x", ""), false},
		{New("x", 0.5), true},
		{NewBlock("b"), false},
		{NewArray("a", []bool{false}), true},
		{NewUserData("u", nil), false},
	}
	for _, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("Truth(%s) = %v", tt.node.DumpString(), got)
		}
	}
}
