package paramtree

import (
	"testing"

	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: `v: 1`, match: `v: 1`, res: true},
	{in: `v: 0`, match: `v: 1`, res: false},
	{in: `v: 1`, match: `v: 1.0`, res: false},
	{in: `v: [1]`, match: `v: [1]`, res: true},
	{in: `v: []`, match: `v: []`, res: true},
	{in: `v: [1]`, match: `v: [2]`, res: false},
	{in: `v: [1, 2]`, match: `v: [1]`, res: false},
	{in: `v: [1]`, match: `v: hello`, res: false},
	{in: "a: b\nc: d", match: "a: b", res: true},
	{in: "a: b", match: "a: b\nc: d", res: false},
	{in: "a: b", match: "{}", res: true},
	{in: "s: {tol: 0.1, iters: 3}", match: "s: {iters: 3}", res: true},
	{in: "s: {tol: 0.1, iters: 3}", match: "s: {iters: 4}", res: false},
	{in: "s: [{a: 1, b: 2}]", match: "s: [{b: 2}]", res: true},
}

func TestMatch(t *testing.T) {
	for i, mt := range matchTests {
		doc, err := parse.Parse([]byte(mt.in))
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		m, err := parse.Parse([]byte(mt.match))
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if got := Match(doc, m); got != mt.res {
			t.Errorf("%d: match %q against %q: got %t", i, mt.match, mt.in, got)
		}
	}
}

func TestMatchUserData(t *testing.T) {
	doc := param.NewBlock("root")
	doc.AddUserData("mesh", &struct{ n int }{})
	if !Match(doc, doc.Clone()) {
		t.Error("clone shares the handle and should match")
	}
	other := param.NewBlock("root")
	other.AddUserData("mesh", &struct{ n int }{})
	if Match(doc, other) {
		t.Error("distinct handles should not match")
	}
}

func TestTrim(t *testing.T) {
	doc, err := parse.Parse([]byte("a: 1\nb: {c: 2, d: 3}\ne: [x, y, z]\n"))
	if err != nil {
		t.Fatal(err)
	}
	pat, err := parse.Parse([]byte("b: {d: 0}\ne: [z, x]\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := `root (BLOCK) =
  b (BLOCK) =
    d (INTEGER) = 3
  e (ARRAY) =
    0 (STRING) = "z"
    1 (STRING) = "x"
`
	trimmed, err := Trim(pat, doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := trimmed.DumpString(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if doc.NumParameters() != 3 {
		t.Error("trim modified its input")
	}
	if trimmed.MustGetPath("e").Type() != param.ArrayKind {
		t.Errorf("e: got %s", trimmed.MustGetPath("e").Type())
	}
}
