package engine

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestNewEngineDisablesCachesOnZeroSize(t *testing.T) {
	e := NewEngine(Weights{}, 0)
	if e.featureCache != nil || e.searchCache != nil {
		t.Error("NewEngine(w, 0) should leave both caches nil")
	}
}

func TestEngineEvaluateReportsInfo(t *testing.T) {
	e := NewEngine(Weights{F1: -1, F3: -1}, 1)
	g := board.NewGame(board.NewFixedBag([]board.PieceType{board.T, board.O, board.I, board.S, board.Z, board.L, board.J}))
	g.SwapHold()

	var info Info
	seen := false
	e.OnInfo = func(i Info) { info = i; seen = true }

	result := e.Evaluate(g)
	if result.Err != "" {
		t.Fatalf("Evaluate failed: %s", result.Err)
	}
	if !seen {
		t.Fatal("expected OnInfo to be called")
	}
	if info.Score == nil || *info.Score != *result.Score {
		t.Error("Info.Score should match the Evaluation's score")
	}
}

func TestEngineClearEmptiesBothCaches(t *testing.T) {
	e := NewEngine(Weights{F1: -1}, 1)
	b := board.New()
	e.featureCache.Store(&b, 5)
	e.searchCache.Store(1, 1, 5)
	e.Clear()
	if _, ok := e.featureCache.Probe(&b); ok {
		t.Error("expected the feature cache to be empty after Clear")
	}
	if _, ok := e.searchCache.Probe(1, 1); ok {
		t.Error("expected the search cache to be empty after Clear")
	}
}

func TestEngineNewSearchAgesSearchCache(t *testing.T) {
	e := NewEngine(Weights{}, 1)
	e.searchCache.Store(1, 5, 9)
	e.NewSearch()
	e.searchCache.Store(1, 1, 2) // shallower, but a new generation
	score, ok := e.searchCache.Probe(1, 1)
	if !ok || score != 2 {
		t.Errorf("after NewSearch, a shallower store should take effect: got (%v,%v)", score, ok)
	}
}
