// Package sequence prints [F(0)..F(n)] from a single provider.
package sequence

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"fib_bench_go/config"
	"fib_bench_go/fibseq"
	"fib_bench_go/logging"
	"fib_bench_go/native"
)

// ErrNoResult means the provider reported a failure and produced no sequence.
var ErrNoResult = errors.New("no result")

// Execute parses index, computes the sequence with the named provider and
// prints it to w.
func Execute(index, provider, libPath string, w io.Writer) error {
	n, err := fibseq.ParseIndex(index)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoResult, err)
	}

	registry := fibseq.NewRegistry(fibseq.Iterative{})
	if provider == "native" {
		lib, p, err := native.Load(libPath, w)
		if err != nil {
			return err
		}
		defer lib.Close()
		registry.Register(p)
	}
	p, err := registry.Lookup(provider)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Calculating Fibonacci sequence with %s for n=%d...\n", p.Name(), n)
	seq, err := p.Sequence(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoResult, err)
	}
	fmt.Fprintln(w, "Result:", seq)
	return nil
}

// Run executes the sequence command.
func Run(args []string) {
	fs := flag.NewFlagSet("sequence", flag.ExitOnError)

	index := fs.String("n", fmt.Sprint(config.SequenceIndex), fmt.Sprintf("Sequence index, 0 to %d", fibseq.MaxIndex))
	provider := fs.String("provider", "pure", "Provider: native or pure")
	libPath := fs.String("lib", "", "Path to "+native.LibraryName+" (default: next to the executable)")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *libPath == "" {
		if *libPath, err = native.DefaultLibraryPath(); err != nil {
			logging.WithComponent("sequence").Errorf("Error resolving executable directory: %v", err)
			os.Exit(1)
		}
	}

	if err := Execute(*index, *provider, *libPath, os.Stdout); err != nil {
		logging.WithComponent("sequence").Errorf("Error: %v", err)
		os.Exit(1)
	}
}
