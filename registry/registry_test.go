package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslevel/xalign/registry"
)

func TestInternAllocatesDenseIndices(t *testing.T) {
	r := registry.New()

	i0, err := r.Intern("e1")
	require.NoError(t, err)
	assert.Equal(t, 0, i0)

	i1, err := r.Intern("e2")
	require.NoError(t, err)
	assert.Equal(t, 1, i1)

	// Re-interning an existing name returns the same index, not a new one.
	again, err := r.Intern("e1")
	require.NoError(t, err)
	assert.Equal(t, i0, again)

	assert.Equal(t, 2, r.Len())
}

func TestInternRejectsEmptyName(t *testing.T) {
	r := registry.New()
	_, err := r.Intern("")
	assert.ErrorIs(t, err, registry.ErrEmptyName)
}

func TestLookupIsBijective(t *testing.T) {
	r := registry.New()
	names := []string{"alpha", "beta", "gamma"}
	idx := make(map[string]int, len(names))
	for _, n := range names {
		i, err := r.Intern(n)
		require.NoError(t, err)
		idx[n] = i
	}

	for n, i := range idx {
		got, err := r.Lookup(i)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestLookupUnknownIndex(t *testing.T) {
	r := registry.New()
	_, err := r.Intern("only")
	require.NoError(t, err)

	_, err = r.Lookup(5)
	assert.ErrorIs(t, err, registry.ErrUnknownIndex)

	_, err = r.Lookup(-1)
	assert.ErrorIs(t, err, registry.ErrUnknownIndex)
}

func TestFreezeRejectsNewNames(t *testing.T) {
	r := registry.New()
	_, err := r.Intern("known")
	require.NoError(t, err)

	r.Freeze()
	assert.True(t, r.Frozen())

	// Re-interning a known name still succeeds after freezing.
	idx, err := r.Intern("known")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	// A genuinely new name is rejected.
	_, err = r.Intern("new")
	assert.ErrorIs(t, err, registry.ErrFrozen)
}

func TestConcurrentInternIsSafe(t *testing.T) {
	r := registry.New()
	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := r.Intern("shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}

func TestNamesReturnsIndexOrderedSnapshot(t *testing.T) {
	r := registry.New()
	for _, n := range []string{"x", "y", "z"} {
		_, err := r.Intern(n)
		require.NoError(t, err)
	}

	names := r.Names()
	require.Equal(t, []string{"x", "y", "z"}, names)

	// Mutating the returned slice must not affect the registry.
	names[0] = "mutated"
	fresh := r.Names()
	assert.Equal(t, "x", fresh[0])
}
