package engine

// SearchEntry caches one dfs() result: the score computed for a board
// position at a given remaining-depth-to-go, under whatever Weights and
// Config were active when it was stored. Probe does not compare Age, so an
// entry from an earlier search stays usable until it is overwritten;
// SearchCache.NewSearch only stops such entries from blocking replacement.
// A cache reused across a Weights or Config change must be emptied with
// SearchCache.Clear, since its scores were computed under the old
// parameters.
type SearchEntry struct {
	Key       uint32
	Score     float64
	Remaining int8 // depth-to-go at which Score was computed
	Age       uint8
	used      bool
}

// SearchCache memoizes dfs results keyed by board hash: many root children
// converge on the same resting board by different paths (a soft-drop
// tweak that ends up in the same place as a different rotation+shift), and
// memoizing collapses that duplicated recursion the same way a chess
// engine's transposition table collapses transposed positions.
type SearchCache struct {
	entries []SearchEntry
	size    uint64
	mask    uint64
	age     uint8

	hits   uint64
	probes uint64
}

// NewSearchCache creates a cache with the given size in MB.
func NewSearchCache(sizeMB int) *SearchCache {
	entrySize := uint64(16) // approx size of SearchEntry
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &SearchCache{
		entries: make([]SearchEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash, returning a cached score only if it was computed at
// least as deep as remaining (a shallower cached result can't stand in for
// a deeper request, the same bound discipline a chess transposition table
// applies to search depth).
func (sc *SearchCache) Probe(hash uint64, remaining int) (float64, bool) {
	sc.probes++
	entry := &sc.entries[hash&sc.mask]
	if entry.used && entry.Key == uint32(hash>>32) && int(entry.Remaining) >= remaining {
		sc.hits++
		return entry.Score, true
	}
	return 0, false
}

// Store saves score for hash at the given remaining depth, replacing
// whatever was there unless the existing entry is from the current search
// and was computed deeper.
func (sc *SearchCache) Store(hash uint64, remaining int, score float64) {
	entry := &sc.entries[hash&sc.mask]
	if entry.used && entry.Age == sc.age && int(entry.Remaining) > remaining {
		return
	}
	entry.Key = uint32(hash >> 32)
	entry.Score = score
	entry.Remaining = int8(remaining)
	entry.Age = sc.age
	entry.used = true
}

// NewSearch increments the age counter; entries from prior searches are
// still usable until overwritten, but no longer block replacement.
func (sc *SearchCache) NewSearch() {
	sc.age++
}

// Clear empties the cache entirely (used when Weights or Config change,
// since a cached score is meaningless under different parameters).
func (sc *SearchCache) Clear() {
	for i := range sc.entries {
		sc.entries[i] = SearchEntry{}
	}
	sc.age = 0
	sc.hits = 0
	sc.probes = 0
}

// HitRate returns the fraction of Probe calls that found a usable entry.
func (sc *SearchCache) HitRate() float64 {
	if sc.probes == 0 {
		return 0
	}
	return float64(sc.hits) / float64(sc.probes)
}

// Size returns the number of entries in the table.
func (sc *SearchCache) Size() uint64 {
	return sc.size
}

// HashFull returns the permille of the table occupied by entries from the
// current search generation, sampling the first 1000 slots.
func (sc *SearchCache) HashFull() int {
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > sc.size {
		sampleSize = int(sc.size)
	}
	for i := 0; i < sampleSize; i++ {
		if sc.entries[i].used && sc.entries[i].Age == sc.age {
			used++
		}
	}
	return (used * 1000) / sampleSize
}
