package engine

import (
	"github.com/cespare/xxhash/v2"
	"github.com/hailam/chessplay/internal/board"
)

// FeatureEntry stores a cached NodeScore result for one board position,
// keyed by the xxhash of its packed bytes. This is the same keyed-scalar-
// cache shape as PawnTable, re-keyed from pawn structure to board shape: both
// exist because recomputing the features is cheap per call but the same
// board recurs constantly across sibling search branches (here, the same
// resting board reached via different hold/rotation/tweak paths collapses to
// one FeatureCache entry the way transposed pawn structures collapse to one
// PawnTable entry).
type FeatureEntry struct {
	Key   uint64
	Score float64
}

// FeatureCache is a hash table for caching NodeScore evaluations.
type FeatureCache struct {
	entries []FeatureEntry
	mask    uint64
	hits    uint64
	probes  uint64
}

// NewFeatureCache creates a feature cache sized to approximately sizeMB
// megabytes, rounded down to a power of 2 entries.
func NewFeatureCache(sizeMB int) *FeatureCache {
	const entrySize = 16 // 8 (key) + 8 (score)
	numEntries := (sizeMB * 1024 * 1024) / entrySize

	size := 1
	for size*2 <= numEntries {
		size *= 2
	}
	if size < 1 {
		size = 1
	}

	return &FeatureCache{
		entries: make([]FeatureEntry, size),
		mask:    uint64(size - 1),
	}
}

// boardKey hashes b's packed bytes with xxhash; this is independent of the
// board package's own internal Board.Hash (which is tuned for the
// child-generator's dedup table) since FeatureCache is an engine-side concern
// with its own collision tolerance.
func boardKey(b *board.Board) uint64 {
	buf := board.NewPackBuffer()
	board.PackBoard(buf, b)
	return xxhash.Sum64(buf.Bytes())
}

// Probe looks up a cached NodeScore for b.
func (fc *FeatureCache) Probe(b *board.Board) (float64, bool) {
	key := boardKey(b)
	fc.probes++
	entry := &fc.entries[key&fc.mask]
	if entry.Key == key {
		fc.hits++
		return entry.Score, true
	}
	return 0, false
}

// Store saves score for b, keyed by its board hash.
func (fc *FeatureCache) Store(b *board.Board, score float64) {
	key := boardKey(b)
	entry := &fc.entries[key&fc.mask]
	entry.Key = key
	entry.Score = score
}

// Clear empties the cache.
func (fc *FeatureCache) Clear() {
	for i := range fc.entries {
		fc.entries[i] = FeatureEntry{}
	}
	fc.hits = 0
	fc.probes = 0
}

// HitRate returns the fraction of Probe calls that found a cached entry.
func (fc *FeatureCache) HitRate() float64 {
	if fc.probes == 0 {
		return 0
	}
	return float64(fc.hits) / float64(fc.probes)
}

// CachedNodeScore returns NodeScore(b, w), serving it from fc when possible.
// Cache entries are only valid for a single weight vector; callers that swap
// Weights mid-search should Clear the cache first.
func CachedNodeScore(fc *FeatureCache, b *board.Board, w Weights) float64 {
	if fc != nil {
		if score, ok := fc.Probe(b); ok {
			return score
		}
	}
	score := NodeScore(b, w)
	if fc != nil {
		fc.Store(b, score)
	}
	return score
}
