package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/tree"
)

var (
	// ErrNotFound is returned by Get for an unknown key.
	ErrNotFound = errors.New("registry: structure not found")

	// ErrBadCount is returned by AddN for a count below 1.
	ErrBadCount = errors.New("registry: count must be >= 1")
)

// Entry is one registered skeleton. Tree is a private copy: editing it does
// not change the registry.
type Entry struct {
	Key   string
	Count int
	Tree  *tree.Tree
}

type record struct {
	tree  *tree.Tree
	count int
}

// Registry maps canonical keys to their tree and observation count.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*record
	total   int
	flight  singleflight.Group
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*record)}
}

// CanonicalKey returns the paired skeleton of s after trimming surrounding
// whitespace.
func CanonicalKey(s string) (string, error) {
	return dotbracket.OnlyPaired(strings.TrimSpace(s))
}

// Add records one observation of s and returns the updated count.
func (r *Registry) Add(s string) (int, error) {
	return r.AddN(s, 1)
}

// AddN records n observations of s and returns the updated count.
func (r *Registry) AddN(s string, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	key, err := CanonicalKey(s)
	if err != nil {
		return 0, err
	}

	// fast path: key already known
	r.mu.Lock()
	if rec, ok := r.entries[key]; ok {
		rec.count += n
		r.total += n
		c := rec.count
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	v, err, _ := r.flight.Do(key, func() (interface{}, error) {
		return tree.Build(key)
	})
	if err != nil {
		return 0, err
	}

	return r.insert(key, v.(*tree.Tree), n), nil
}

// insert adds n to key, creating the record with t when absent.
func (r *Registry) insert(key string, t *tree.Tree, n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.entries[key]
	if !ok {
		rec = &record{tree: t}
		r.entries[key] = rec
	}
	rec.count += n
	r.total += n

	return rec.count
}

// Get returns the entry of s's skeleton with a copy of its tree.
func (r *Registry) Get(s string) (Entry, error) {
	key, err := CanonicalKey(s)
	if err != nil {
		return Entry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return Entry{Key: key, Count: rec.count, Tree: rec.tree.Clone()}, nil
}

// Contains reports whether s's skeleton is registered. Invalid input is never
// contained.
func (r *Registry) Contains(s string) bool {
	key, err := CanonicalKey(s)
	if err != nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]

	return ok
}

// Len returns the number of distinct keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Total returns the number of observations over all keys.
func (r *Registry) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.total
}

// Keys returns the registered keys, shortest first, ties broken
// lexicographically. Entries returns the same order as (key, count) pairs.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sortKeys(keys)

	return keys
}

// sortKeys orders keys by length, then lexicographically.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

// Entries returns the (key, count) pairs of the registry in Keys order,
// each with a copy of its tree.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for k, rec := range r.entries {
		out = append(out, Entry{Key: k, Count: rec.count, Tree: rec.tree.Clone()})
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Key) != len(out[j].Key) {
			return len(out[i].Key) < len(out[j].Key)
		}
		return out[i].Key < out[j].Key
	})

	return out
}

// Merge adds every count of other into r. Keys new to r reuse other's tree.
// other is read from a snapshot, so r.Merge(r) doubles every count.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for _, e := range other.Entries() {
		r.insert(e.Key, e.Tree, e.Count)
	}
}
