package sanity_check

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fib_bench_go/native"
)

func TestExecuteWithoutLibrary(t *testing.T) {
	var out bytes.Buffer
	Execute(filepath.Join(t.TempDir(), native.LibraryName), &out)
	assert.Contains(t, out.String(), "Successfully running Fib Bench! (v1.0.0)")
	assert.Contains(t, out.String(), "Native library unavailable:")
}
