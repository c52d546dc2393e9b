package benchmark

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func rusage() (unix.Rusage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return ru, fmt.Errorf("getrusage: %w", err)
	}
	return ru, nil
}

func processCPUTime() (time.Duration, error) {
	ru, err := rusage()
	if err != nil {
		return 0, err
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}

// Darwin exposes no cheap current-RSS counter; peak RSS (bytes) stands in.
func residentSetSize() (uint64, error) {
	ru, err := rusage()
	if err != nil {
		return 0, err
	}
	return uint64(ru.Maxrss), nil
}
