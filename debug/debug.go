// Package debug gates diagnostic output behind ODDL_DEBUG_* environment
// variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Tree   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("ODDL_DEBUG_ENCODE")
	d.Tree = boolEnv("ODDL_DEBUG_TREE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Tree() bool {
	return d.Tree
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
