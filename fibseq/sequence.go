// Package fibseq defines the Fibonacci sequence contract shared by every
// provider, along with the pure Go iterative provider.
package fibseq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxIndex is the largest n whose F(n) fits in 64 unsigned bits.
// F(93) = 12200160415121876738, F(94) would wrap.
const MaxIndex = 93

var (
	ErrNegativeIndex = errors.New("input n cannot be negative")
	ErrNotInteger    = errors.New("input n must be an integer")
	ErrOverflow      = fmt.Errorf("input n exceeds %d, the largest index representable in uint64", MaxIndex)
)

// Sequence holds F(0)..F(n), so len(Sequence) == n+1.
type Sequence []uint64

// Index returns the n this sequence was computed for.
func (s Sequence) Index() int {
	return len(s) - 1
}

// Last returns F(n), or 0 for an empty sequence.
func (s Sequence) Last() uint64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// Provider produces [F(0)..F(n)] or fails. Implementations never return a
// partial sequence alongside an error.
type Provider interface {
	Name() string
	Sequence(n int) (Sequence, error)
}

// ValidateIndex applies the shared input contract: 0 <= n <= MaxIndex.
func ValidateIndex(n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeIndex)
	}
	if n > MaxIndex {
		return fmt.Errorf("n=%d: %w", n, ErrOverflow)
	}
	return nil
}

// ParseIndex converts textual input (CLI flags) into a validated index.
// "3.5", "1e2" and "abc" are rejected with ErrNotInteger.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return 0, fmt.Errorf("n=%s: %w", s, ErrNegativeIndex)
			}
			return 0, fmt.Errorf("n=%s: %w", s, ErrOverflow)
		}
		return 0, fmt.Errorf("n=%q: %w", s, ErrNotInteger)
	}
	if err := ValidateIndex(n); err != nil {
		return 0, err
	}
	return n, nil
}
