// Package benchmark measures Fibonacci sequence providers: repeated-call
// timing, single-call resource usage, and a wrapper that reports the cost of
// any whole tool run.
package benchmark

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"fib_bench_go/logging"
)

// Run wraps f, reporting its runtime, Go heap activity and process counters.
func Run(label string, w io.Writer, s Sampler, f func()) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	CaptureEnvironment().Print(w)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	procStart, startErr := s.Sample()
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	procEnd, endErr := s.Sample()
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", mib(int64(memEnd.Alloc)-int64(memStart.Alloc)))
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", mib(int64(memEnd.TotalAlloc-memStart.TotalAlloc)))
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", mib(int64(memEnd.HeapAlloc)))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	if startErr != nil || endErr != nil {
		logging.WithComponent("benchmark").Warnf("process counters unavailable: %v", firstErr(startErr, endErr))
	} else {
		fmt.Fprintf(w, "[Benchmark] Process CPU Time: %.6f seconds\n", (procEnd.CPU - procStart.CPU).Seconds())
		fmt.Fprintf(w, "[Benchmark] Resident Memory Delta: %.2f MB\n", mib(int64(procEnd.RSS)-int64(procStart.RSS)))
	}
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", startGoroutines, endGoroutines)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

func mib(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
