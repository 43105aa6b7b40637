package engine

import "testing"

func TestSearchCacheProbeMiss(t *testing.T) {
	sc := NewSearchCache(1)
	if _, ok := sc.Probe(123, 3); ok {
		t.Error("Probe on an empty cache should miss")
	}
}

func TestSearchCacheStoreThenProbeAtSameOrShallowerDepth(t *testing.T) {
	sc := NewSearchCache(1)
	sc.Store(123, 3, 9.5)
	score, ok := sc.Probe(123, 3)
	if !ok || score != 9.5 {
		t.Fatalf("Probe at the stored depth = (%v,%v), want (9.5,true)", score, ok)
	}
	if _, ok := sc.Probe(123, 2); !ok {
		t.Error("a result computed at depth 3 should satisfy a request for depth 2")
	}
}

func TestSearchCacheProbeRejectsDeeperRequest(t *testing.T) {
	sc := NewSearchCache(1)
	sc.Store(123, 1, 1.0)
	if _, ok := sc.Probe(123, 5); ok {
		t.Error("a shallow cached result should not satisfy a deeper request")
	}
}

func TestSearchCacheNewSearchAllowsOverwrite(t *testing.T) {
	sc := NewSearchCache(1)
	sc.Store(123, 5, 1.0)
	if _, ok := sc.Probe(123, 5); !ok {
		t.Fatal("expected the first store to be probeable")
	}
	sc.NewSearch()
	sc.Store(123, 1, 2.0) // shallower, but a new search generation
	score, ok := sc.Probe(123, 1)
	if !ok || score != 2.0 {
		t.Errorf("after NewSearch, a shallower store should replace the old entry: got (%v,%v)", score, ok)
	}
}

func TestSearchCacheClearResetsStats(t *testing.T) {
	sc := NewSearchCache(1)
	sc.Store(1, 1, 1)
	sc.Probe(1, 1)
	sc.Clear()
	if _, ok := sc.Probe(1, 1); ok {
		t.Error("expected a miss after Clear")
	}
	if sc.HitRate() != 0 {
		t.Errorf("HitRate() after Clear = %v, want 0", sc.HitRate())
	}
}

func TestRoundDownToPowerOf2(t *testing.T) {
	cases := map[uint64]uint64{
		1: 1, 2: 2, 3: 2, 4: 4, 5: 4, 1023: 512, 1024: 1024,
	}
	for in, want := range cases {
		if got := roundDownToPowerOf2(in); got != want {
			t.Errorf("roundDownToPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
