package engine

import (
	"container/heap"
	"math"

	"github.com/hailam/chessplay/internal/board"
)

// Config controls the tree search: how many tweak permutations the child
// generator tries per branch (FinesseDepth), how many children each DFS
// level expands (Take), and how many levels deep the search recurses
// (Depth). The child generator's own typical operating points are finesse
// depths 1-3; the tree search itself only ever asks for depth 1 or 2, since
// deeper finesse is reserved for offline analysis rather than per-move
// search.
type Config struct {
	FinesseDepth board.Fin
	Take         int
	Depth        int
}

// DefaultConfig returns the search parameters a fresh Engine uses: finesse
// depth 2 (a strict superset of depth 1's candidates, since the "full" tweak
// alphabet already includes the identity tweak), a beam width of 4, and a
// search depth of 2 plies beyond the root.
func DefaultConfig() Config {
	return Config{
		FinesseDepth: board.FinFull2,
		Take:         4,
		Depth:        2,
	}
}

// negInf stands in for a missing or topped-out child's score.
var negInf = math.Inf(-1)

// scoredChild pairs a child with its combined node+edge score, for ranking
// in the DFS max-heap.
type scoredChild struct {
	child board.Child
	score float64
	idx   int // enumeration order, for stable tie-breaking
}

// childHeap is a max-heap over scoredChild by score, falling back to
// enumeration order on ties.
type childHeap []scoredChild

func (h childHeap) Len() int { return len(h) }
func (h childHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].idx < h[j].idx
}
func (h childHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *childHeap) Push(x any)   { *h = append(*h, x.(scoredChild)) }
func (h *childHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// rankedChildren scores every child of g (dropping those that topped out)
// and returns them in a max-heap, ready for dfs to pop its top Take.
func rankedChildren(g *board.Game, cfg Config, w Weights, fc *FeatureCache) *childHeap {
	children := g.Children(cfg.FinesseDepth)
	h := make(childHeap, 0, len(children))
	for i, c := range children {
		if c.Game.ToppedOut {
			continue
		}
		s := CachedNodeScore(fc, &c.Game.Board, w) + EdgeScore(c.LockInfo, w)
		h = append(h, scoredChild{child: c, score: s, idx: i})
	}
	heap.Init(&h)
	return &h
}

// dfs is the recursive half of C7: at the configured depth it returns the
// node-feature score of the position itself; otherwise it pops up to
// cfg.Take top-ranked children from a max-heap over (node_score +
// edge_score) and recurses, returning the best total. A position with no
// viable children returns negative infinity, matching a "missing child".
// sc, if non-nil, memoizes results per board hash to collapse transposed
// lines the way a chess transposition table collapses them.
func dfs(g *board.Game, depth int, cfg Config, w Weights, fc *FeatureCache, sc *SearchCache) float64 {
	remaining := cfg.Depth - depth
	hash := g.Board.HashWithHold(g.HasHold)
	if sc != nil {
		if cached, ok := sc.Probe(hash, remaining); ok {
			return cached
		}
	}

	var result float64
	if depth == cfg.Depth {
		result = CachedNodeScore(fc, &g.Board, w)
	} else {
		h := rankedChildren(g, cfg, w, fc)
		if h.Len() == 0 {
			result = negInf
		} else {
			best := negInf
			taken := 0
			for h.Len() > 0 && taken < cfg.Take {
				popped := heap.Pop(h).(scoredChild)
				taken++
				total := popped.score + dfs(&popped.child.Game, depth+1, cfg, w, fc, sc)
				if total > best {
					best = total
				}
			}
			result = best
		}
	}

	if sc != nil {
		sc.Store(hash, remaining, result)
	}
	return result
}

// rootCandidate is one of the top-level children considered at the root.
type rootCandidate struct {
	child board.Child
	score float64
}

// Evaluate implements the C7 procedure: prime the hold if it is empty,
// generate children at the configured finesse depth, pick the child
// maximizing node_score + edge_score + DFS(child, 1, Take), and return its
// action sequence. Root children are scored sequentially: fc/sc are shared,
// unsynchronized caches, so fanning this loop out across goroutines without
// giving each one private cache state would race on them, unlike
// children.go's ChildrenPar, whose workers only ever touch private
// per-partition boards merged into one pass at the end.
func Evaluate(g *board.Game, cfg Config, w Weights, fc *FeatureCache, sc *SearchCache) board.Evaluation {
	if g.Queue.Len() == 0 {
		return board.Evaluation{Err: "no pieces"}
	}
	if !g.HasHold {
		return board.Evaluation{Moves: []board.Action{board.Hold}}
	}

	children := g.Children(cfg.FinesseDepth)
	live := make([]board.Child, 0, len(children))
	for _, c := range children {
		if !c.Game.ToppedOut {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return board.Evaluation{Moves: []board.Action{board.HardDrop}}
	}

	var best rootCandidate
	for i, c := range live {
		s := NodeScore(&c.Game.Board, w) + EdgeScore(c.LockInfo, w) + dfs(&c.Game, 1, cfg, w, fc, sc)
		if i == 0 || s > best.score {
			best = rootCandidate{child: c, score: s}
		}
	}
	score := best.score
	return board.Evaluation{Moves: best.child.Actions(), Score: &score}
}
