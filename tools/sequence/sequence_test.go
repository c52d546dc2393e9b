package sequence

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fib_bench_go/fibseq"
	"fib_bench_go/logging"
	"fib_bench_go/native"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestExecutePrintsSequence(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Execute("15", "pure", "", &out))
	assert.Equal(t,
		"Calculating Fibonacci sequence with pure for n=15...\n"+
			"Result: [0 1 1 2 3 5 8 13 21 34 55 89 144 233 377 610]\n",
		out.String())

	out.Reset()
	require.NoError(t, Execute("0", "pure", "", &out))
	assert.Contains(t, out.String(), "Result: [0]\n")

	out.Reset()
	require.NoError(t, Execute("1", "pure", "", &out))
	assert.Contains(t, out.String(), "Result: [0 1]\n")
}

func TestExecuteRejectsBadIndex(t *testing.T) {
	var out bytes.Buffer
	err := Execute("-1", "pure", "", &out)
	assert.ErrorIs(t, err, ErrNoResult)
	assert.ErrorIs(t, err, fibseq.ErrNegativeIndex)

	err = Execute("3.5", "pure", "", &out)
	assert.ErrorIs(t, err, ErrNoResult)
	assert.ErrorIs(t, err, fibseq.ErrNotInteger)

	assert.Empty(t, out.String())
}

func TestExecuteUnknownProvider(t *testing.T) {
	err := Execute("5", "gpu", "", io.Discard)
	assert.ErrorContains(t, err, `unknown provider "gpu"`)
}

func TestExecuteNativeMissingLibrary(t *testing.T) {
	err := Execute("5", "native", filepath.Join(t.TempDir(), native.LibraryName), io.Discard)
	assert.ErrorIs(t, err, native.ErrLoadLibrary)
}
