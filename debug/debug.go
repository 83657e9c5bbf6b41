package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	Diff  bool
	Map   bool
	Match bool
	Build bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PTREE_DEBUG_PARSE")
	d.Eval = boolEnv("PTREE_DEBUG_EVAL")
	d.Patch = boolEnv("PTREE_DEBUG_PATCH")
	d.Diff = boolEnv("PTREE_DEBUG_DIFF")
	d.Map = boolEnv("PTREE_DEBUG_MAP")
	d.Match = boolEnv("PTREE_DEBUG_MATCH")
	d.Build = boolEnv("PTREE_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Map() bool {
	return d.Map
}
func Match() bool {
	return d.Match
}
func Build() bool {
	return d.Build
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
