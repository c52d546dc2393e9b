//go:build !linux && !darwin

package benchmark

import (
	"runtime"
	"time"
)

// Without an OS counter the Go runtime's view stands in: no CPU time, and
// memory obtained from the OS as a proxy for RSS.
func processCPUTime() (time.Duration, error) {
	return 0, nil
}

func residentSetSize() (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys, nil
}
