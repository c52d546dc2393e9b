package benchmark

import (
	"runtime"
	"time"
)

// Snapshot is a point-in-time reading of process-wide counters.
type Snapshot struct {
	RSS  uint64        // resident set size in bytes
	CPU  time.Duration // user + system CPU time consumed so far
	Heap uint64        // Go heap bytes in use
}

// Sampler reads process counters. Swapping it out keeps tests free of
// machine-dependent numbers.
type Sampler interface {
	Sample() (Snapshot, error)
}

// NopSampler always reports zero usage.
type NopSampler struct{}

func (NopSampler) Sample() (Snapshot, error) { return Snapshot{}, nil }

// ProcessSampler reads the current process's counters from the OS.
type ProcessSampler struct{}

func (ProcessSampler) Sample() (Snapshot, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	cpu, err := processCPUTime()
	if err != nil {
		return Snapshot{}, err
	}
	rss, err := residentSetSize()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{RSS: rss, CPU: cpu, Heap: ms.HeapAlloc}, nil
}
