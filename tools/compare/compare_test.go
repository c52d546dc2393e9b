package compare

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fib_bench_go/benchmark"
	"fib_bench_go/logging"
	"fib_bench_go/native"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestExecutePureOnly(t *testing.T) {
	var out bytes.Buffer
	chart := filepath.Join(t.TempDir(), "timings.svg")
	err := Execute(Settings{
		Providers: []string{"pure"},
		ChartPath: chart,
		N:         15,
		Runs:      20,
		Sampler:   benchmark.NopSampler{},
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Comparing execution time for n=15 (runs=20)...")
	assert.Contains(t, text, "[Timing] pure: 20 runs...")
	assert.Contains(t, text, "Pure Go function:")
	assert.Contains(t, text, "Comparing resource usage for a single run (n=15)...")
	assert.Contains(t, text, "System Info: ")
	assert.Contains(t, text, "Timing chart written to "+chart)
	assert.FileExists(t, chart)
}

func TestExecuteMissingLibraryIsFatal(t *testing.T) {
	var out bytes.Buffer
	err := Execute(Settings{
		LibraryPath: filepath.Join(t.TempDir(), native.LibraryName),
		Providers:   []string{"native", "pure"},
		N:           15,
		Runs:        1,
		Sampler:     benchmark.NopSampler{},
	}, &out)
	assert.ErrorIs(t, err, native.ErrLoadLibrary)
	assert.Empty(t, out.String())
}

func TestExecuteUnknownProvider(t *testing.T) {
	err := Execute(Settings{
		Providers: []string{"pure", "gpu"},
		N:         15,
		Runs:      1,
		Sampler:   benchmark.NopSampler{},
	}, io.Discard)
	assert.ErrorContains(t, err, `unknown provider "gpu"`)
}

func TestExecuteWithBuiltLibrary(t *testing.T) {
	lib, err := filepath.Abs(filepath.Join("..", "..", native.LibraryName))
	require.NoError(t, err)
	if _, err := os.Stat(lib); err != nil {
		t.Skipf("%s not built; run `make lib`", lib)
	}

	var out bytes.Buffer
	err = Execute(Settings{
		LibraryPath: lib,
		Providers:   []string{"native", "pure"},
		N:           15,
		Runs:        100,
		Sampler:     benchmark.ProcessSampler{},
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Successfully loaded native library: "+lib)
	assert.Contains(t, text, "Calling native function for n = 15...")
	assert.Contains(t, text, "Native function via purego (CPU time):")
	assert.Contains(t, text, "faster than")
}
