package eval

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/paramtree/param"
)

func TestExpandString(t *testing.T) {
	env := Env{"n": 4, "name": "fuel", "xs": []any{1, 2}}
	tests := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"", ""},
		{"cells-$[n*n]", "cells-16"},
		{"$[name]-$[n]", "fuel-4"},
		{"half $[n / 8]", "half 0.5"},
		{"$[n > 2]", "true"},
		{"list $[xs]", "list [1,2]"},
		{`$["a\]b"]`, "a]b"},
		{"open $[n", "open $[n"},
		{"dollar $ sign", "dollar $ sign"},
		{".[n]", ".[n]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandString(tt.in, env)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.out {
				t.Errorf("ExpandString(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestExpandNode(t *testing.T) {
	root := param.NewBlock("deck")
	param.AddValue(root, "cells", ".[n * 2]")
	param.AddValue(root, "label", "mesh-$[n]")
	param.AddValue(root, "scale", 1.5)
	param.AddValue(root, "ref", `.[getpath("scale") * 2]`)
	root.AddParameter(param.NewArray("tags", []string{"$[upper(name)]", "$[whereami()]"}))
	root.SetErrorOriginScope("Deck")

	got, err := ExpandNode(root, Env{"n": 4, "name": "fuel"})
	if err != nil {
		t.Fatal(err)
	}
	want := `deck (BLOCK) =
  cells (INTEGER) = 8
  label (STRING) = "mesh-4"
  scale (FLOAT) = 1.5
  ref (FLOAT) = 3.0
  tags (ARRAY) =
    0 (STRING) = "FUEL"
    1 (STRING) = "tags[1]"
`
	if diff := cmp.Diff(want, got.DumpString()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.ErrorOriginScope() != "Deck" {
		t.Errorf("scope lost: %q", got.ErrorOriginScope())
	}
	if v, _ := param.GetParamValue[string](root, "cells"); v != ".[n * 2]" {
		t.Errorf("input modified: %q", v)
	}
}

func TestExpandNodeError(t *testing.T) {
	root := param.NewBlock("deck")
	inner := param.NewBlock("solver")
	param.AddValue(inner, "bad", ".[nosuch(1)]")
	root.AddParameter(inner)
	_, err := ExpandNode(root, Env{})
	if err == nil || !strings.HasPrefix(err.Error(), "solver.bad: ") {
		t.Errorf("got %v", err)
	}
}

func TestEval(t *testing.T) {
	root := param.NewBlock("deck")
	param.AddValue(root, "a", 2)
	root.AddParameter(param.NewArray("xs", []int{1, 2, 3}))
	got, err := Eval(root, "a * len(xs)")
	if err != nil {
		t.Fatal(err)
	}
	n, err := param.FromAny("r", got)
	if err != nil {
		t.Fatal(err)
	}
	if v, err := param.GetValue[int](n); err != nil || v != 6 {
		t.Errorf("Eval = %#v", got)
	}
	if _, err := Eval(param.New("x", 1), "1"); err == nil {
		t.Errorf("Eval on scalar root succeeded")
	}
}
