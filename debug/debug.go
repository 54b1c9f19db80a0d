package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Diff   bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FX_DEBUG_PARSE")
	d.Encode = boolEnv("FX_DEBUG_ENCODE")
	d.Diff = boolEnv("FX_DEBUG_DIFF")
	d.Query = boolEnv("FX_DEBUG_QUERY")
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
func Encode() bool {
	return d.Encode
}
func Diff() bool {
	return d.Diff
}
func Query() bool {
	return d.Query
}
