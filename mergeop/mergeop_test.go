package mergeop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *param.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s), parse.ParseName("deck"), parse.ParseScope("Solver"))
	require.NoError(t, err)
	return n
}

func TestPatch(t *testing.T) {
	doc := mustParse(t, "tol: 1\ngroups: [1, 2]\nname: a\n")
	res, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/tol", "value": 2},
		{"op": "add", "path": "/groups/2", "value": 3},
		{"op": "remove", "path": "/name"}
	]`))
	require.NoError(t, err)
	want := `deck (BLOCK) =
  groups (ARRAY) =
    0 (INTEGER) = 1
    1 (INTEGER) = 2
    2 (INTEGER) = 3
  tol (INTEGER) = 2
`
	if diff := cmp.Diff(want, res.DumpString()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	require.Equal(t, "Solver", res.MustGetPath("groups[2]").ErrorOriginScope())
	// input untouched
	require.True(t, doc.Has("name"))

	_, err = Patch(doc, []byte(`[{"op": "test", "path": "/tol", "value": 99}]`))
	require.ErrorIs(t, err, ErrPatch)
	_, err = Patch(doc, []byte(`{`))
	require.ErrorIs(t, err, ErrPatch)
}

func TestMerge(t *testing.T) {
	base := mustParse(t, "solver: {tol: 1, iters: 10}\nmesh: coarse\n")
	overlay := mustParse(t, "solver: {iters: 50}\nmesh: fine\nextra: [1]\n")
	res, err := Merge(base, overlay)
	require.NoError(t, err)
	require.Equal(t, "deck", res.Name())
	got, err := param.ToAny(res)
	require.NoError(t, err)
	want := map[string]any{
		"solver": map[string]any{"tol": int64(1), "iters": int64(50)},
		"mesh":   "fine",
		"extra":  []any{int64(1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMergeDiff(t *testing.T) {
	from := mustParse(t, "a: 1\nb: {c: 2}\n")
	to := mustParse(t, "a: 1\nb: {c: 3}\n")
	d, err := MergeDiff(from, to)
	require.NoError(t, err)
	require.JSONEq(t, `{"b": {"c": 3}}`, string(d))

	back, err := mergeJSON(from, d)
	require.NoError(t, err)
	require.True(t, param.Equal(to, back))
}

func TestUserDataRejected(t *testing.T) {
	doc := mustParse(t, "a: 1\n")
	require.NoError(t, doc.AddUserData("mesh", &struct{ n int }{}))
	_, err := Merge(doc, mustParse(t, "a: 2\n"))
	require.ErrorIs(t, err, param.ErrNotRepresentable)
}

func TestApply(t *testing.T) {
	require.Equal(t, []string{"json-patch", "merge-patch", "pass"}, Symbols())

	doc := mustParse(t, "a: 1\n")
	res, err := Apply(doc, "pass", nil)
	require.NoError(t, err)
	require.Same(t, doc, res)

	ops := mustParse(t, "- {op: add, path: /b, value: x}\n")
	res, err = Apply(doc, "json-patch", ops)
	require.NoError(t, err)
	b, err := param.GetParamValue[string](res, "b")
	require.NoError(t, err)
	require.Equal(t, "x", b)

	res, err = Apply(doc, "merge-patch", mustParse(t, "a: 5\n"))
	require.NoError(t, err)
	a, err := param.GetParamValue[int](res, "a")
	require.NoError(t, err)
	require.Equal(t, 5, a)

	_, err = Apply(doc, "json-patch", doc)
	require.ErrorIs(t, err, ErrPatch)
	_, err = Apply(doc, "nope", nil)
	require.ErrorIs(t, err, ErrPatch)
}

func TestMergeDuplicateNames(t *testing.T) {
	base := param.NewBlock("deck")
	require.NoError(t, param.AddValue(base, "a", 1))
	require.NoError(t, param.AddValue(base, "a", 2))
	inner := param.NewBlock("solver")
	require.NoError(t, param.AddValue(inner, "tol", 0.5))
	require.NoError(t, param.AddValue(inner, "tol", 0.25))
	require.NoError(t, base.AddParameter(inner))
	before, err := param.GetParamValue[int](base, "a")
	require.NoError(t, err)
	require.Equal(t, 1, before)

	overlay := param.NewBlock("overlay")
	require.NoError(t, param.AddValue(overlay, "b", 3))
	res, err := Merge(base, overlay)
	require.NoError(t, err)
	want := `deck (BLOCK) =
  a (INTEGER) = 1
  b (INTEGER) = 3
  solver (BLOCK) =
    tol (FLOAT) = 0.5
`
	if diff := cmp.Diff(want, res.DumpString()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	patched, err := Patch(base, []byte(`[{"op": "test", "path": "/a", "value": 1}]`))
	require.NoError(t, err)
	require.Equal(t, 2, patched.NumParameters())
}
