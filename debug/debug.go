// Package debug gates verbose tracing behind environment variables so
// it can be switched on in the field without a rebuild.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Events bool
	HTTP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("DATMIRROR_DEBUG_EVENTS")
	d.HTTP = boolEnv("DATMIRROR_DEBUG_HTTP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Events reports whether parser event tracing is on.
func Events() bool {
	return d.Events
}

// HTTP reports whether request tracing is on.
func HTTP() bool {
	return d.HTTP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
