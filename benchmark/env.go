package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Environment records where and when a benchmark ran, for repeatability.
type Environment struct {
	Timestamp time.Time
	Hostname  string
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
}

func CaptureEnvironment() Environment {
	env := Environment{
		Timestamp: time.Now(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
	if host, err := os.Hostname(); err == nil {
		env.Hostname = host
	}
	return env
}

func (e Environment) Print(w io.Writer) {
	fmt.Fprintln(w, "[Benchmark] Timestamp:", e.Timestamp.Format(time.RFC1123))
	if e.Hostname != "" {
		fmt.Fprintln(w, "[Benchmark] Hostname:", e.Hostname)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", e.GoVersion)
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", e.OS, e.Arch)
}
