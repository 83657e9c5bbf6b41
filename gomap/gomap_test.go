package gomap

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
	"github.com/stretchr/testify/require"
)

type mesh struct{ cells int }

type Common struct {
	Verbose bool `param:"verbose"`
}

type Solver struct {
	Common
	MaxIters int               `param:"max_iters" validate:"gt=0"`
	Tol      float64           `param:"tol"`
	Groups   []uint8           `param:"groups"`
	Kind     string            `param:"kind" validate:"oneof=gmres cg"`
	Weights  map[string]int    `param:"weights"`
	Extra    any               `param:"extra"`
	Mesh     *mesh             `param:"mesh"`
	Raw      *param.Node       `param:"raw"`
	Skipped  string            `param:"-"`
	Opt      *Options          `param:"opt"`
	Pair     [2]string         `param:"pair"`
	Labels   map[string]string `param:"labels,omitempty"`
}

type Options struct {
	Restart int
}

const deck = `
verbose: true
max_iters: 50
tol: 0.25
groups: [0, 1, 2]
kind: gmres
weights: {a: 1, b: 2}
extra: {x: [1, "y"]}
raw: {k: v}
opt: {Restart: 30}
pair: [left, right]
Skipped: nope
`

func TestDecode(t *testing.T) {
	n, err := parse.Parse([]byte(deck))
	require.NoError(t, err)
	m := &mesh{cells: 4}
	require.NoError(t, n.AddUserData("mesh", m))

	var s Solver
	require.NoError(t, Decode(n, &s))

	require.True(t, s.Verbose)
	require.Equal(t, 50, s.MaxIters)
	require.Equal(t, 0.25, s.Tol)
	require.Equal(t, []uint8{0, 1, 2}, s.Groups)
	require.Equal(t, map[string]int{"a": 1, "b": 2}, s.Weights)
	require.Same(t, m, s.Mesh)
	require.Equal(t, "", s.Skipped)
	require.Equal(t, 30, s.Opt.Restart)
	require.Equal(t, [2]string{"left", "right"}, s.Pair)
	if diff := cmp.Diff(map[string]any{"x": []any{int64(1), "y"}}, s.Extra); diff != "" {
		t.Errorf("extra (-want +got):\n%s", diff)
	}
	require.Equal(t, "raw (BLOCK) =\n  k (STRING) = \"v\"\n", s.Raw.DumpString())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		path string
	}{
		{"float to int", "max_iters: 1.5\nkind: cg\n", param.ErrTypeMismatch, "max_iters"},
		{"uint overflow", "max_iters: 1\nkind: cg\ngroups: [300]\n", param.ErrTypeMismatch, "groups[0]"},
		{"block to slice elem", "max_iters: 1\nkind: cg\ngroups: [{}]\n", param.ErrStructure, "groups[0]"},
		{"scalar to struct", "max_iters: 1\nkind: cg\nopt: 3\n", param.ErrTypeMismatch, "opt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parse.Parse([]byte(tt.in))
			require.NoError(t, err)
			var s Solver
			err = Decode(n, &s)
			require.ErrorIs(t, err, tt.want)
			var te *TypeError
			require.ErrorAs(t, err, &te)
			require.Equal(t, tt.path, te.FieldPath)
		})
	}
}

func TestDecodeValidation(t *testing.T) {
	n, err := parse.Parse([]byte("max_iters: 0\nkind: gmres\n"))
	require.NoError(t, err)
	var s Solver
	err = Decode(n, &s)
	var ue *UnmarshalError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "Solver.MaxIters", ue.FieldPath)

	n, err = parse.Parse([]byte("max_iters: 3\nkind: bicg\n"))
	require.NoError(t, err)
	require.Error(t, Decode(n, &s))

	require.Error(t, Decode(n, s))
	require.Error(t, Decode(n, nil))
}

type celsius float64

func (c *celsius) FromParam(n *param.Node) error {
	s, err := param.GetValue[string](n)
	if err != nil {
		return err
	}
	s, ok := strings.CutSuffix(s, "C")
	if !ok {
		return errors.New("missing unit")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*c = celsius(f)
	return nil
}

func (c celsius) ToParam(name string) (*param.Node, error) {
	return param.New(name, strconv.FormatFloat(float64(c), 'g', -1, 64)+"C"), nil
}

func TestUnmarshaler(t *testing.T) {
	var v struct {
		T celsius `param:"t"`
	}
	n := param.NewBlock("x")
	require.NoError(t, param.AddValue(n, "t", "21.5C"))
	require.NoError(t, Decode(n, &v))
	require.Equal(t, celsius(21.5), v.T)

	bad := param.NewBlock("x")
	require.NoError(t, param.AddValue(bad, "t", "70F"))
	require.Error(t, Decode(bad, &v))

	out, err := Encode("x", v)
	require.NoError(t, err)
	require.Equal(t, "x (BLOCK) =\n  t (STRING) = \"21.5C\"\n", out.DumpString())
}

func TestEncode(t *testing.T) {
	m := &mesh{cells: 1}
	s := Solver{
		Common:   Common{Verbose: true},
		MaxIters: 5,
		Tol:      0.5,
		Groups:   []uint8{1},
		Kind:     "cg",
		Weights:  map[string]int{"b": 2, "a": 1},
		Mesh:     m,
		Pair:     [2]string{"l", "r"},
	}
	n, err := Encode("solver", s)
	require.NoError(t, err)
	want := `solver (BLOCK) =
  verbose (BOOLEAN) = true
  max_iters (INTEGER) = 5
  tol (FLOAT) = 0.5
  groups (ARRAY) =
    0 (INTEGER) = 1
  kind (STRING) = "cg"
  weights (BLOCK) =
    a (INTEGER) = 1
    b (INTEGER) = 2
  mesh (USER_DATA) = <user data: *gomap.mesh>
  pair (ARRAY) =
    0 (STRING) = "l"
    1 (STRING) = "r"
`
	if diff := cmp.Diff(want, n.DumpString()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var back Solver
	require.NoError(t, Decode(n, &back))
	require.Same(t, m, back.Mesh)
	require.Equal(t, s.Weights, back.Weights)
}

func TestEncodeUintOverflow(t *testing.T) {
	type counters struct {
		Seen uint64 `param:"seen"`
	}
	n, err := Encode("c", counters{Seen: 1 << 40})
	require.NoError(t, err)
	require.Equal(t, "c (BLOCK) =\n  seen (INTEGER) = 1099511627776\n", n.DumpString())

	_, err = Encode("c", counters{Seen: 1 << 63})
	require.ErrorIs(t, err, param.ErrNotRepresentable)
	var merr *MarshalError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, "seen", merr.FieldPath)
}
