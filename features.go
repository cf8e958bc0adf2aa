// features.go - Version and capability report for -features.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
)

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func printFeatures() {
	writeFeatures(os.Stdout)
}

func writeFeatures(w io.Writer) {
	fmt.Fprintf(w, "oplmidi %s\n", Version)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  Chips:      %s, %s, %s\n", OPL_TYPE_OPL2, OPL_TYPE_DUAL_OPL2, OPL_TYPE_OPL3)
	fmt.Fprintf(w, "  Sources:    %d\n", MAXIMUM_SOURCES)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compiled features:")

	features := append([]string(nil), compiledFeatures...)
	sort.Strings(features)
	for _, f := range features {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(features) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
}
