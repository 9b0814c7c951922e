package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/registry"
	"github.com/katalvlaran/rnashape/tree"
)

func TestCanonicalKey(t *testing.T) {
	k, err := registry.CanonicalKey(".(()).\n")
	require.NoError(t, err)
	assert.Equal(t, "(())", k)

	k, err = registry.CanonicalKey("....")
	require.NoError(t, err)
	assert.Equal(t, "", k)

	_, err = registry.CanonicalKey("(()")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

// TestAdd_SameSkeleton checks that structures differing only in unpaired
// positions share one entry.
func TestAdd_SameSkeleton(t *testing.T) {
	r := registry.New()
	c, err := r.Add("(())")
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = r.Add(".(()).\n")
	require.NoError(t, err)
	assert.Equal(t, 2, c)

	e, err := r.Get("((..))")
	require.NoError(t, err)
	assert.Equal(t, "(())", e.Key)
	assert.Equal(t, 2, e.Count)
	require.NotNil(t, e.Tree)
	assert.Equal(t, "(())", e.Tree.String())

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, r.Total())
}

func TestAdd_Errors(t *testing.T) {
	r := registry.New()
	_, err := r.Add("(()")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
	_, err = r.AddN("()", 0)
	assert.ErrorIs(t, err, registry.ErrBadCount)
	assert.Zero(t, r.Len())
}

func TestGetContains(t *testing.T) {
	r := registry.New()
	_, err := r.AddN("()()", 3)
	require.NoError(t, err)

	assert.True(t, r.Contains("().()"))
	assert.False(t, r.Contains("(())"))
	assert.False(t, r.Contains("("))

	_, err = r.Get("(())")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	_, err = r.Get(")(")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

func TestKeys_Order(t *testing.T) {
	r := registry.New()
	for _, s := range []string{"(()())", "()()", "(())", "", "()", "(()).()"} {
		_, err := r.Add(s)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"", "()", "(())", "()()", "(()())", "(())()"}, r.Keys())

	entries := r.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, "", entries[0].Key)
}

// TestEntries_Pairs checks that Entries lists (key, count) pairs in Keys order.
func TestEntries_Pairs(t *testing.T) {
	r := registry.New()
	for s, n := range map[string]int{"()": 3, "(())": 1, "()()": 2} {
		_, err := r.AddN(s, n)
		require.NoError(t, err)
	}

	keys := r.Keys()
	counts := make(map[string]int)
	for i, e := range r.Entries() {
		assert.Equal(t, keys[i], e.Key)
		counts[e.Key] = e.Count
	}
	assert.Equal(t, map[string]int{"()": 3, "(())": 1, "()()": 2}, counts)
}

// TestGet_TreeIsCopy edits returned trees and checks the registry is unchanged.
func TestGet_TreeIsCopy(t *testing.T) {
	r := registry.New()
	_, err := r.Add("((.))")
	require.NoError(t, err)

	e, err := r.Get("(())")
	require.NoError(t, err)
	inner := e.Tree.Children(e.Tree.Forest()[0])[0]
	require.NoError(t, e.Tree.Relabel(inner, tree.LabelHelix))
	require.NoError(t, e.Tree.Contract(inner))

	again, err := r.Get("(())")
	require.NoError(t, err)
	assert.Equal(t, "(())", again.Tree.String())
	assert.Equal(t, tree.LabelPaired, again.Tree.Label(again.Tree.Children(again.Tree.Forest()[0])[0]))

	for _, entry := range r.Entries() {
		require.NoError(t, entry.Tree.Contract(entry.Tree.Forest()[0]))
	}
	again, err = r.Get("(())")
	require.NoError(t, err)
	assert.Equal(t, "(())", again.Tree.String())
}

func TestMerge(t *testing.T) {
	a, b := registry.New(), registry.New()
	_, _ = a.AddN("()", 2)
	_, _ = a.Add("(())")
	_, _ = b.AddN("()", 5)
	_, _ = b.Add("()()")

	a.Merge(b)
	a.Merge(nil)

	e, err := a.Get("()")
	require.NoError(t, err)
	assert.Equal(t, 7, e.Count)
	assert.True(t, a.Contains("()()"))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 9, a.Total())

	// b is untouched
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 6, b.Total())
}

// TestConcurrentAdd hammers Add from many goroutines and checks that no
// increment is lost and every key keeps a single tree.
func TestConcurrentAdd(t *testing.T) {
	const workers, perWorker = 16, 200
	keys := []string{"()", "(())", "()()", "((()))"}
	r := registry.New()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s := keys[(w+i)%len(keys)]
				if i%2 == 0 {
					s = "." + s + "."
				}
				_, err := r.Add(s)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, r.Total())
	sum := 0
	for _, e := range r.Entries() {
		sum += e.Count
		assert.Equal(t, e.Key, e.Tree.String(), fmt.Sprintf("tree for %q", e.Key))
	}
	assert.Equal(t, workers*perWorker, sum)
	assert.Equal(t, len(keys), r.Len())
}
