package fibseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedProvider struct {
	name string
}

func (p namedProvider) Name() string { return p.name }

func (p namedProvider) Sequence(n int) (Sequence, error) {
	return Iterative{}.Sequence(n)
}

func TestRegistryLookupAndSelect(t *testing.T) {
	r := NewRegistry(Iterative{}, namedProvider{name: "native"})
	assert.Equal(t, []string{"native", "pure"}, r.Names())

	p, err := r.Lookup("pure")
	require.NoError(t, err)
	assert.Equal(t, "pure", p.Name())

	_, err = r.Lookup("gpu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "gpu"`)

	selected, err := r.Select([]string{"native", "pure"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "native", selected[0].Name())
	assert.Equal(t, "pure", selected[1].Name())

	_, err = r.Select([]string{"pure", "gpu"})
	assert.Error(t, err)
}

func TestRegistryReplacesSameName(t *testing.T) {
	r := NewRegistry(Iterative{})
	r.Register(namedProvider{name: "pure"})
	p, err := r.Lookup("pure")
	require.NoError(t, err)
	_, isIterative := p.(Iterative)
	assert.False(t, isIterative)
}
