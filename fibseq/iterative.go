package fibseq

import "fib_bench_go/logging"

// Iterative computes the sequence with a plain two-term loop in Go.
type Iterative struct{}

func (Iterative) Name() string { return "pure" }

// Sequence returns [F(0)..F(n)]. Invalid input is logged and yields nil.
func (Iterative) Sequence(n int) (Sequence, error) {
	if err := ValidateIndex(n); err != nil {
		logging.WithComponent("pure").Errorf("Error: %v", err)
		return nil, err
	}
	if n == 0 {
		return Sequence{0}, nil
	}
	if n == 1 {
		return Sequence{0, 1}, nil
	}

	results := make(Sequence, n+1)
	results[0] = 0
	results[1] = 1
	for i := 2; i <= n; i++ {
		results[i] = results[i-1] + results[i-2]
	}
	return results, nil
}
