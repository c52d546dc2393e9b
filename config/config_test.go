package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaultsToCompare(t *testing.T) {
	opts := ParseArgs(nil)
	assert.Equal(t, "compare", opts.Tool)
	assert.Empty(t, opts.Args)
	assert.False(t, opts.Benchmark)

	opts = ParseArgs([]string{"-lib", "/tmp/fibonacci_sequence.so", "-benchmark"})
	assert.Equal(t, "compare", opts.Tool)
	assert.Equal(t, []string{"-lib", "/tmp/fibonacci_sequence.so"}, opts.Args)
	assert.True(t, opts.Benchmark)
}

func TestParseArgsToolAndGlobals(t *testing.T) {
	opts := ParseArgs([]string{"sequence", "-n=3", "-benchmark", "-provider=pure"})
	assert.Equal(t, "sequence", opts.Tool)
	assert.Equal(t, []string{"-n=3", "-provider=pure"}, opts.Args)
	assert.True(t, opts.Benchmark)

	opts = ParseArgs([]string{"check", "-version"})
	assert.True(t, opts.Version)
}

func TestParseArgsHelp(t *testing.T) {
	assert.True(t, ParseArgs([]string{"-h"}).Help)
	assert.True(t, ParseArgs([]string{"-help"}).Help)

	opts := ParseArgs([]string{"sequence", "-h"})
	assert.False(t, opts.Help)
	assert.Equal(t, []string{"-h"}, opts.Args)
}

func TestParseProviders(t *testing.T) {
	names, err := ParseProviders("native, pure")
	require.NoError(t, err)
	assert.Equal(t, []string{"native", "pure"}, names)

	names, err = ParseProviders("pure,")
	require.NoError(t, err)
	assert.Equal(t, []string{"pure"}, names)

	_, err = ParseProviders(" , ")
	assert.Error(t, err)
	_, err = ParseProviders("pure,pure")
	assert.Error(t, err)
}
