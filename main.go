package main

import (
	"fmt"
	"os"
	"strings"

	"fib_bench_go/benchmark"
	"fib_bench_go/config"
	"fib_bench_go/native"
	"fib_bench_go/tools/compare"
	"fib_bench_go/tools/sanity_check"
	"fib_bench_go/tools/sequence"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Printf(`Fib Bench - Custom Help Menu
Usage:
  fibbench [tool] [options]

Tools:
  compare		(default) Time native vs. pure Fibonacci sequences
			and compare single-run CPU and memory usage
  sequence		Print F(0)..F(n) from one provider
  check			Run diagnostic test

The native provider loads %s from the executable's directory;
build it with "make lib".

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Wraps the selected tool and displays computational
			resource usage and pertinent operating system information
`, native.LibraryName)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Fib Bench - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tFib Bench:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tCompare:\t\t%s\n", config.Compare)
	fmt.Printf("\tSequence:\t\t%s\n", config.Sequence)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.SanityCheck)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {
	opts := config.ParseArgs(os.Args[1:])

	if opts.Help {
		printCustomHelp()
	}
	if opts.Version {
		printVersion()
	}

	// Tool execution wrapper
	run := func() {
		switch opts.Tool {
		case "compare":
			compare.Run(opts.Args)
		case "sequence":
			sequence.Run(opts.Args)
		case "check":
			sanity_check.Run(opts.Args)
		default:
			fmt.Printf("Unknown tool: %s\n", opts.Tool)
			os.Exit(1)
		}
	}

	if opts.Benchmark {
		label := strings.TrimSpace(fmt.Sprintf("fibbench %s %s", opts.Tool, strings.Join(opts.Args, " ")))
		benchmark.Run(label, os.Stdout, benchmark.ProcessSampler{}, run)
	} else {
		run()
	}
}
