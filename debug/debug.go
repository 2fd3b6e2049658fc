// Package debug holds process-wide debug switches, read once from the
// environment at startup. Set CONFTREE_DEBUG_COMBINE=1 (etc.) to enable.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Combine bool
	Parse   bool
	Encode  bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Combine = boolEnv("CONFTREE_DEBUG_COMBINE")
	d.Parse = boolEnv("CONFTREE_DEBUG_PARSE")
	d.Encode = boolEnv("CONFTREE_DEBUG_ENCODE")
	d.Patch = boolEnv("CONFTREE_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Combine() bool {
	return d.Combine
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
