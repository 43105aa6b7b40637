package pcgraph

import (
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// TableCache wraps an on-disk badger-backed table store with an in-memory
// cache, so a long pc-table-dump run need not re-unpack the same packed
// table repeatedly. Grounded on a chess engine's cached tablebase prober:
// an RWMutex-protected map with half-cache eviction on overflow and
// hit/miss counters, re-keyed from a Zobrist position hash to a
// content-addressed table key.
type TableCache struct {
	mu      sync.RWMutex
	cache   map[string]*ActionTable
	maxSize int
	hits    uint64
	misses  uint64
}

// NewTableCache returns a cache holding at most maxSize unpacked tables.
func NewTableCache(maxSize int) *TableCache {
	return &TableCache{cache: make(map[string]*ActionTable, maxSize), maxSize: maxSize}
}

// Get returns the cached table for key, if present.
func (tc *TableCache) Get(key string) (*ActionTable, bool) {
	tc.mu.RLock()
	t, ok := tc.cache[key]
	tc.mu.RUnlock()
	tc.mu.Lock()
	if ok {
		tc.hits++
	} else {
		tc.misses++
	}
	tc.mu.Unlock()
	return t, ok
}

// Put stores t under key, evicting half the cache if it is full.
func (tc *TableCache) Put(key string, t *ActionTable) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.cache) >= tc.maxSize {
		i := 0
		for k := range tc.cache {
			if i >= tc.maxSize/2 {
				break
			}
			delete(tc.cache, k)
			i++
		}
	}
	tc.cache[key] = t
}

// HitRate returns the cache hit rate as a percentage.
func (tc *TableCache) HitRate() float64 {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	total := tc.hits + tc.misses
	if total == 0 {
		return 0
	}
	return float64(tc.hits) / float64(total) * 100
}

// Store persists packed pc-graph artifacts (tessellations, edges, or an
// ActionTable) under a content-addressed key in a badger.DB, grounded
// directly on internal/storage.Storage's Open/Get/Set/Close wrapper,
// generalized from JSON values to raw packed bytes.
type Store struct {
	db *badger.DB
}

// OpenStore opens (creating if necessary) a badger-backed store at dir.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores raw bytes under key.
func (s *Store) Put(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get retrieves the bytes stored under key, returning ok=false if absent.
func (s *Store) Get(key string) (data []byte, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})
	return data, ok, err
}
