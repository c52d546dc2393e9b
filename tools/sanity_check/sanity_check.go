package sanity_check

import (
	"fmt"
	"io"
	"os"

	"fib_bench_go/config" // Version control file
	"fib_bench_go/native"
)

// Execute prints the version banner and whether the native library at
// libPath can be loaded and bound.
func Execute(libPath string, w io.Writer) {
	fmt.Fprintf(w, "Successfully running Fib Bench! (%s)\n", config.Main_version)

	lib, _, err := native.Load(libPath, nil)
	if err != nil {
		fmt.Fprintf(w, "Native library unavailable: %v\n", err)
		return
	}
	defer lib.Close()
	fmt.Fprintf(w, "Native library ready: %s (%s bound)\n", lib.Path, native.SymbolName)
}

// Run performs a simple sanity check to ensure Fib Bench is
// running properly, printing a helpful message and version number.
func Run(args []string) {
	libPath, err := native.DefaultLibraryPath()
	if err != nil {
		fmt.Println("Error resolving executable directory:", err)
		os.Exit(1)
	}
	Execute(libPath, os.Stdout)
}
