package param

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/paramtree/kpath"
)

func solverTree() *Node {
	root := NewBlock("root")
	solver := NewBlock("solver")
	AddValue(solver, "tol", 1e-6)
	groups := NewArray[int]("groups", nil)
	for i, n := range []string{"fast", "thermal"} {
		g := NewBlock("")
		g.SetBlockName(string(rune('0' + i)))
		AddValue(g, "name", n)
		groups.AddParameter(g)
	}
	solver.AddParameter(groups)
	root.AddParameter(solver)
	AddValue(root, "a.b", 1)
	return root
}

func TestGetPath(t *testing.T) {
	root := solverTree()
	tests := []struct {
		path string
		want string
		err  error
	}{
		{"solver.tol", "tol (FLOAT) = 1e-06\n", nil},
		{"solver.groups[1].name", "name (STRING) = \"thermal\"\n", nil},
		{`"a.b"`, "a.b (INTEGER) = 1\n", nil},
		{"solver.missing", "", ErrNotFound},
		{"solver.groups[5]", "", ErrNotFound},
		{"solver.tol.x", "", ErrStructure},
		{"solver.groups[*]", "", ErrStructure},
		{"solver..tol", "", kpath.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := root.GetPath(tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("got %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got.DumpString()); diff != "" {
				t.Error(diff)
			}
		})
	}
	if root.MustGetPath("") != root {
		t.Errorf("empty path is not the root")
	}
}

func TestListPath(t *testing.T) {
	root := solverTree()
	got, err := root.ListPath(nil, "solver.groups[*].name")
	if err != nil {
		t.Fatal(err)
	}
	var vals []string
	for _, n := range got {
		v, err := GetValue[string](n)
		if err != nil {
			t.Fatal(err)
		}
		vals = append(vals, v)
	}
	if diff := cmp.Diff([]string{"fast", "thermal"}, vals); diff != "" {
		t.Error(diff)
	}

	got, _ = root.ListPath(nil, "*")
	if len(got) != 2 {
		t.Errorf("* matched %d nodes", len(got))
	}
	got, _ = root.ListPath(nil, "solver[*]")
	if len(got) != 0 {
		t.Errorf("[*] on a block matched %d nodes", len(got))
	}

	for _, i := range []int{-1, 99} {
		kp := kpath.Field("solver").Append(kpath.Field("groups")).Append(kpath.Index(i))
		if got := root.ListKPath(nil, kp); len(got) != 0 {
			t.Errorf("index %d matched %d nodes", i, len(got))
		}
		if _, err := root.GetKPath(kp); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetKPath index %d: got %v", i, err)
		}
	}
	kp := kpath.Field("solver").Append(kpath.Field("groups")).Append(kpath.Index(1))
	if got := root.ListKPath(nil, kp); len(got) != 1 {
		t.Errorf("index 1 matched %d nodes", len(got))
	}
}

func TestVisitPaths(t *testing.T) {
	var pre, post []string
	err := solverTree().Visit(func(p string, _ *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, p)
			return true, nil
		}
		pre = append(pre, p)
		return p != "solver.groups", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []string{"", "solver", "solver.tol", "solver.groups", `"a.b"`}
	if diff := cmp.Diff(wantPre, pre); diff != "" {
		t.Errorf("pre (-want +got):\n%s", diff)
	}
	wantPost := []string{"solver.tol", "solver.groups", "solver", `"a.b"`, ""}
	if diff := cmp.Diff(wantPost, post); diff != "" {
		t.Errorf("post (-want +got):\n%s", diff)
	}

	var all []string
	for p := range solverTree().Paths {
		all = append(all, p)
	}
	if diff := cmp.Diff("solver.groups[1].name", all[len(all)-2]); diff != "" {
		t.Error(diff)
	}
}
