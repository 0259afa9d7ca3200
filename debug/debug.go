package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Store bool
	Watch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("CONFVAR_DEBUG_PATCH")
	d.Store = boolEnv("CONFVAR_DEBUG_STORE")
	d.Watch = boolEnv("CONFVAR_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Store() bool {
	return d.Store
}
func Watch() bool {
	return d.Watch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
