// Package native delegates Fibonacci sequence computation to the compiled
// fibonacci_sequence routine loaded from a shared library at run time.
package native

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"fib_bench_go/fibseq"
	"fib_bench_go/logging"
)

const (
	LibraryName = "fibonacci_sequence.so"
	SymbolName  = "fibonacci_sequence"
)

// Status codes returned by the native routine.
const (
	StatusOK             int32 = 0
	StatusBufferTooSmall int32 = -1
)

var (
	ErrLoadLibrary         = errors.New("error loading native library")
	ErrMissingSymbol       = errors.New("function not found in native library")
	ErrUnsupportedPlatform = errors.New("native library loading is not supported on this platform")
	ErrBufferTooSmall      = errors.New("buffer size was insufficient (this shouldn't happen with correct size calculation)")
)

// StatusError carries a status code the native routine is not documented to return.
type StatusError struct {
	Code int32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unknown status code %d", e.Code)
}

// SequenceFunc mirrors
//
//	int fibonacci_sequence(int n, unsigned long long *result_array, int array_size)
type SequenceFunc func(n int32, buf *uint64, size int32) int32

// Provider is the native-delegating fibseq.Provider.
type Provider struct {
	fn  SequenceFunc
	out io.Writer
}

// NewProvider wraps a bound routine. A non-nil out receives per-call
// progress lines; the timing loop passes nil.
func NewProvider(fn SequenceFunc, out io.Writer) *Provider {
	return &Provider{fn: fn, out: out}
}

// Quiet returns a copy of p that prints no progress lines.
func (p *Provider) Quiet() *Provider {
	return &Provider{fn: p.fn}
}

func (p *Provider) Name() string { return "native" }

// Sequence allocates a fresh n+1 buffer, hands it to the native routine and
// interprets the returned status. Failures are logged and yield nil.
func (p *Provider) Sequence(n int) (fibseq.Sequence, error) {
	log := logging.WithComponent("native")
	if err := fibseq.ValidateIndex(n); err != nil {
		log.Errorf("Error: %v", err)
		return nil, err
	}

	size := n + 1
	buf := make([]uint64, size)

	if p.out != nil {
		fmt.Fprintf(p.out, "\nCalling native function for n = %d...\n", n)
	}
	status := p.fn(int32(n), &buf[0], int32(size))
	runtime.KeepAlive(buf)

	switch status {
	case StatusOK:
		if p.out != nil {
			fmt.Fprintln(p.out, "Native function executed successfully.")
		}
		return fibseq.Sequence(buf), nil
	case StatusBufferTooSmall:
		log.Errorf("Error returned from native function: %v", ErrBufferTooSmall)
		return nil, ErrBufferTooSmall
	default:
		err := &StatusError{Code: status}
		log.Errorf("Error returned from native function: %v", err)
		return nil, err
	}
}
