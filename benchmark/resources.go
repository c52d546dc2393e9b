package benchmark

import (
	"fmt"
	"time"

	"fib_bench_go/fibseq"
)

// Usage is the change in process counters across a single provider call.
type Usage struct {
	Provider  string
	N         int
	CPU       time.Duration
	RSSDelta  int64
	HeapDelta int64
	Result    fibseq.Sequence
	Err       error // the provider's error, if the call itself failed
}

// Measure samples s immediately before and after one p.Sequence(n) call.
// A provider failure is recorded on the Usage; only sampler failures are returned.
func Measure(p fibseq.Provider, n int, s Sampler) (Usage, error) {
	u := Usage{Provider: p.Name(), N: n}

	before, err := s.Sample()
	if err != nil {
		return u, fmt.Errorf("sampling before %s: %w", p.Name(), err)
	}
	u.Result, u.Err = p.Sequence(n)
	after, err := s.Sample()
	if err != nil {
		return u, fmt.Errorf("sampling after %s: %w", p.Name(), err)
	}

	u.CPU = after.CPU - before.CPU
	if u.CPU < 0 {
		u.CPU = 0
	}
	u.RSSDelta = int64(after.RSS) - int64(before.RSS)
	u.HeapDelta = int64(after.Heap) - int64(before.Heap)
	return u, nil
}
