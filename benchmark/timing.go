package benchmark

import (
	"math"
	"time"

	"fib_bench_go/fibseq"
	"fib_bench_go/logging"
)

// Timing is the accumulated wall-clock time of repeated calls to one provider.
type Timing struct {
	Provider string
	N        int
	Runs     int
	Failures int
	Elapsed  time.Duration
}

func (t Timing) Seconds() float64 { return t.Elapsed.Seconds() }

// PerRun is the average wall-clock time of a single call.
func (t Timing) PerRun() time.Duration {
	if t.Runs == 0 {
		return 0
	}
	return t.Elapsed / time.Duration(t.Runs)
}

// Time calls p.Sequence(n) runs times back to back and measures the total.
// Failed calls still count towards the time; they are tallied and reported once.
func Time(p fibseq.Provider, n, runs int) Timing {
	t := Timing{Provider: p.Name(), N: n, Runs: runs}

	start := time.Now()
	for i := 0; i < runs; i++ {
		if _, err := p.Sequence(n); err != nil {
			t.Failures++
		}
	}
	t.Elapsed = time.Since(start)

	if t.Failures > 0 {
		logging.WithComponent("timing").Warnf("Warning: %s failed on %d of %d runs", t.Provider, t.Failures, runs)
	}
	return t
}

// Comparison states which of two timings was faster and by what factor.
type Comparison struct {
	Faster Timing
	Slower Timing
	Ratio  float64 // Slower/Faster; +Inf when Faster measured zero
}

// Compare orders a and b. Ties go to a.
func Compare(a, b Timing) Comparison {
	c := Comparison{Faster: a, Slower: b}
	if b.Elapsed < a.Elapsed {
		c.Faster, c.Slower = b, a
	}
	if c.Faster.Elapsed <= 0 {
		c.Ratio = math.Inf(1)
		return c
	}
	c.Ratio = float64(c.Slower.Elapsed) / float64(c.Faster.Elapsed)
	return c
}
