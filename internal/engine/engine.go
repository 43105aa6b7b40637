package engine

import (
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// Info reports one completed Evaluate call, the way a chess engine's
// SearchInfo reports one completed iterative-deepening depth. C7 has no
// iterative deepening — a single Evaluate call is the whole search — so
// there is exactly one Info per call rather than one per depth.
type Info struct {
	Nodes   uint64
	Elapsed time.Duration
	Score   *float64
	Moves   []board.Action
}

// Engine wires together the pieces C7 needs: the scoring Weights, the
// search Config (finesse depth, beam width, recursion depth), and the two
// caches that make repeated evaluation cheap (FeatureCache for node
// scores, SearchCache for whole dfs subtrees).
type Engine struct {
	Weights Weights
	Config  Config

	featureCache *FeatureCache
	searchCache  *SearchCache

	// OnInfo, if set, is called after every Evaluate with a summary of the
	// search just performed — the Tetris analogue of a UCI engine's
	// Engine.OnInfo callback used to stream "info" lines.
	OnInfo func(Info)
}

// NewEngine creates an Engine with the given weights and default-sized
// caches (sizeMB megabytes each). Pass 0 to disable both caches entirely.
func NewEngine(w Weights, sizeMB int) *Engine {
	e := &Engine{
		Weights: w,
		Config:  DefaultConfig(),
	}
	if sizeMB > 0 {
		e.featureCache = NewFeatureCache(sizeMB)
		e.searchCache = NewSearchCache(sizeMB)
	}
	return e
}

// NewSearch ages out cache entries from the previous call. Callers that
// change Weights between calls should Clear instead, since a cached score
// computed under different weights is not just stale but wrong.
func (e *Engine) NewSearch() {
	if e.searchCache != nil {
		e.searchCache.NewSearch()
	}
}

// Clear empties both caches outright — required after a Weights change,
// since cached scores are only valid under the weights that produced them.
func (e *Engine) Clear() {
	if e.featureCache != nil {
		e.featureCache.Clear()
	}
	if e.searchCache != nil {
		e.searchCache.Clear()
	}
}

// Evaluate runs C7 against g under the Engine's current Weights and
// Config, reporting the result via OnInfo if set.
func (e *Engine) Evaluate(g *board.Game) board.Evaluation {
	start := time.Now()
	probesBefore := uint64(0)
	if e.featureCache != nil {
		probesBefore = e.featureCache.probes
	}
	result := Evaluate(g, e.Config, e.Weights, e.featureCache, e.searchCache)

	if e.OnInfo != nil {
		nodes := uint64(0)
		if e.featureCache != nil {
			nodes = e.featureCache.probes - probesBefore
		}
		e.OnInfo(Info{
			Nodes:   nodes,
			Elapsed: time.Since(start),
			Score:   result.Score,
			Moves:   result.Moves,
		})
	}
	return result
}
