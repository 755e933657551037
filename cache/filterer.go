// Package cache memoizes catalog filter results.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/storefind"
)

// DefaultMaxEntries bounds the number of cached results.
const DefaultMaxEntries = 256

var _ storefind.ProductFilterer = (*Filterer)(nil)

// Filterer memoizes the results of a ProductFilterer by filter, ignoring
// when a state was issued. The wrapped filterer must be pure, which holds
// for storefind.Catalog. It is safe for concurrent use.
type Filterer struct {
	next storefind.ProductFilterer

	// MaxEntries bounds the cache. When it is full the cache is cleared.
	MaxEntries int

	mu      sync.Mutex
	entries map[uint64]entry
	hits    int
	misses  int
}

type entry struct {
	state    storefind.FilterState
	products []*storefind.Product
}

// NewFilterer creates a new Filterer wrapping next.
func NewFilterer(next storefind.ProductFilterer) *Filterer {
	return &Filterer{
		next:       next,
		MaxEntries: DefaultMaxEntries,
		entries:    make(map[uint64]entry),
	}
}

// FilterProducts returns the cached result for the state's filter, calling
// the wrapped filterer on a miss. Callers must not modify the returned slice.
func (f *Filterer) FilterProducts(state storefind.FilterState) []*storefind.Product {
	key := Key(state)

	f.mu.Lock()
	if e, ok := f.entries[key]; ok && e.state.SameFilter(state) {
		f.hits++
		f.mu.Unlock()
		return e.products
	}
	f.misses++
	f.mu.Unlock()

	products := f.next.FilterProducts(state)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MaxEntries > 0 && len(f.entries) >= f.MaxEntries {
		clear(f.entries)
	}
	f.entries[key] = entry{state: state, products: products}
	return products
}

// Stats returns the number of cache hits and misses so far.
func (f *Filterer) Stats() (hits, misses int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits, f.misses
}

// Len returns the number of cached results.
func (f *Filterer) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Key hashes the filter dimensions of a state. IssuedAt is not part of the key.
func Key(state storefind.FilterState) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(state.Category)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(string(state.SortBy))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(state.Query)
	return d.Sum64()
}
