package benchmark

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var labels = map[string]string{
	"native": "Native function via purego",
	"pure":   "Pure Go function",
}

// Label returns the human-readable name used in reports for a provider.
func Label(provider string) string {
	if l, ok := labels[provider]; ok {
		return l
	}
	return provider
}

func labelWidth(names []string, suffix string) int {
	width := 0
	for _, name := range names {
		if l := len(Label(name) + suffix); l > width {
			width = l
		}
	}
	return width
}

// PrintTimingHeader announces the timing harness.
func PrintTimingHeader(w io.Writer, n, runs int) {
	fmt.Fprintf(w, "Comparing execution time for n=%d (runs=%d)...\n", n, runs)
}

// PrintTimings writes the absolute times and how much faster the quickest
// provider was than each of the others.
func PrintTimings(w io.Writer, timings []Timing) {
	if len(timings) == 0 {
		return
	}
	names := make([]string, len(timings))
	for i, t := range timings {
		names[i] = t.Provider
	}
	width := labelWidth(names, ":") + 1

	for _, t := range timings {
		fmt.Fprintf(w, "%-*s%.6f seconds\n", width, Label(t.Provider)+":", t.Seconds())
	}

	fastest := timings[0]
	for _, t := range timings[1:] {
		if t.Elapsed < fastest.Elapsed {
			fastest = t
		}
	}
	for _, t := range timings {
		if t.Provider == fastest.Provider {
			continue
		}
		fmt.Fprintln(w, ratioLine(Compare(fastest, t)))
	}
}

func ratioLine(c Comparison) string {
	name := cases.Title(language.English).String(c.Faster.Provider)
	if math.IsInf(c.Ratio, 1) {
		return fmt.Sprintf("%s version was immeasurably faster than %s.", name, c.Slower.Provider)
	}
	return fmt.Sprintf("%s version was approx %.2f times faster than %s.", name, c.Ratio, c.Slower.Provider)
}

// PrintUsageHeader announces the resource harness.
func PrintUsageHeader(w io.Writer, n int) {
	fmt.Fprintf(w, "\nComparing resource usage for a single run (n=%d)...\n", n)
}

// PrintUsage writes CPU time and memory deltas, one block per measure.
func PrintUsage(w io.Writer, usages []Usage) {
	p := message.NewPrinter(language.English)
	names := make([]string, len(usages))
	for i, u := range usages {
		names[i] = u.Provider
	}
	width := labelWidth(names, " (Heap delta):") + 1
	pad := func(label string) string { return fmt.Sprintf("%-*s", width, label) }

	fmt.Fprintln(w, "\nResource Usage Comparison:")
	for _, u := range usages {
		fmt.Fprintf(w, "%s%.6f seconds\n", pad(Label(u.Provider)+" (CPU time):"), u.CPU.Seconds())
	}
	for _, u := range usages {
		p.Fprintf(w, "%s%.2f KB\n", pad(Label(u.Provider)+" (Mem delta):"), float64(u.RSSDelta)/1024.0)
	}
	for _, u := range usages {
		p.Fprintf(w, "%s%.2f KB\n", pad(Label(u.Provider)+" (Heap delta):"), float64(u.HeapDelta)/1024.0)
	}
}

// SystemInfo identifies the platform as "<os> <arch>".
func SystemInfo() string {
	return fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
}

func PrintSystemInfo(w io.Writer) {
	fmt.Fprintf(w, "\nSystem Info: %s\n", SystemInfo())
}
