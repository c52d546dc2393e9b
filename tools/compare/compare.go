// Package compare runs the native vs. pure Fibonacci benchmark: repeated-call
// timing, single-call resource usage, and platform identification.
package compare

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fib_bench_go/benchmark"
	"fib_bench_go/config"
	"fib_bench_go/fibseq"
	"fib_bench_go/logging"
	"fib_bench_go/native"
)

// Settings is everything one comparison needs. N and Runs come from
// config.SequenceIndex and config.TimingRuns on the command line.
type Settings struct {
	LibraryPath string
	Providers   []string
	ChartPath   string
	N           int
	Runs        int
	Sampler     benchmark.Sampler
}

// Execute runs the comparison, writing the report to w. Failing to load or
// bind the native library is returned as an error; accessor failures are
// reported inline.
func Execute(s Settings, w io.Writer) error {
	timed, single, closeLib, err := providers(s, w)
	if err != nil {
		return err
	}
	defer closeLib()

	benchmark.PrintTimingHeader(w, s.N, s.Runs)
	timings := make([]benchmark.Timing, 0, len(timed))
	for _, p := range timed {
		fmt.Fprintf(w, "[Timing] %s: %d runs...\n", p.Name(), s.Runs)
		timings = append(timings, benchmark.Time(p, s.N, s.Runs))
	}
	benchmark.PrintTimings(w, timings)

	benchmark.PrintUsageHeader(w, s.N)
	usages := make([]benchmark.Usage, 0, len(single))
	for _, p := range single {
		u, err := benchmark.Measure(p, s.N, s.Sampler)
		if err != nil {
			return err
		}
		if u.Err != nil {
			fmt.Fprintf(w, "%s returned no result for n=%d\n", benchmark.Label(u.Provider), s.N)
		}
		usages = append(usages, u)
	}
	benchmark.PrintUsage(w, usages)
	benchmark.PrintSystemInfo(w)

	if s.ChartPath != "" {
		if err := benchmark.SaveChart(timings, s.ChartPath); err != nil {
			logging.WithComponent("compare").Errorf("Error: %v", err)
		} else {
			fmt.Fprintf(w, "\nTiming chart written to %s\n", s.ChartPath)
		}
	}
	return nil
}

// providers resolves the selected names twice: quiet instances for the
// timing loop and progress-printing ones for the single-shot measurements.
func providers(s Settings, w io.Writer) (timed, single []fibseq.Provider, closeLib func(), err error) {
	closeLib = func() {}
	quiet := fibseq.NewRegistry(fibseq.Iterative{})
	verbose := fibseq.NewRegistry(fibseq.Iterative{})

	if contains(s.Providers, "native") {
		lib, p, err := native.Load(s.LibraryPath, w)
		if err != nil {
			return nil, nil, closeLib, err
		}
		fmt.Fprintf(w, "Successfully loaded native library: %s\n", lib.Path)
		closeLib = func() { lib.Close() }
		quiet.Register(p.Quiet())
		verbose.Register(p)
	}

	if timed, err = quiet.Select(s.Providers); err != nil {
		closeLib()
		return nil, nil, func() {}, err
	}
	if single, err = verbose.Select(s.Providers); err != nil {
		closeLib()
		return nil, nil, func() {}, err
	}
	return timed, single, closeLib, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Run executes the compare command. Load and bind failures are fatal.
func Run(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError) // Isolated flag set for the "compare" subcommand

	libPath := fs.String("lib", "", "Path to "+native.LibraryName+" (default: next to the executable)")
	providerList := fs.String("providers", "native,pure", "Comma separated providers to compare")
	chartPath := fs.String("chart", "", "Write a timing bar chart to this file (.svg, .png, .pdf)")

	fs.Parse(args)
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	names, err := config.ParseProviders(*providerList)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if *libPath == "" {
		*libPath, err = native.DefaultLibraryPath()
		if err != nil {
			logging.WithComponent("compare").Errorf("Error resolving executable directory: %v", err)
			os.Exit(1)
		}
	}

	settings := Settings{
		LibraryPath: *libPath,
		Providers:   names,
		ChartPath:   *chartPath,
		N:           config.SequenceIndex,
		Runs:        config.TimingRuns,
		Sampler:     benchmark.ProcessSampler{},
	}
	if err := Execute(settings, os.Stdout); err != nil {
		logging.WithComponent("compare").Error(err)
		os.Exit(1)
	}
}
