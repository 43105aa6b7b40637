package pcgraph

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestAllNormPiecesNonEmpty(t *testing.T) {
	pieces := allNormPieces()
	if len(pieces) == 0 {
		t.Fatal("expected a nonempty set of normalized piece placements")
	}
	for _, p := range pieces {
		if p.Shape == ([pcRows]uint16{}) {
			t.Errorf("%v rotation %d x %d has an all-zero shape", p.Type, p.Rotation, p.X)
		}
	}
}

func TestAllNormPiecesCanonicallyOrdered(t *testing.T) {
	pieces := allNormPieces()
	for i := 1; i < len(pieces); i++ {
		if !pieces[i-1].less(pieces[i]) && pieces[i-1] != pieces[i] {
			prev, cur := pieces[i-1], pieces[i]
			if prev.Type == cur.Type && prev.Rotation == cur.Rotation && prev.X == cur.X {
				continue
			}
			t.Fatalf("enumeration order violated at index %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestNormPieceLessAndGeq(t *testing.T) {
	a := NormPiece{Type: board.O, Rotation: 0, X: 1}
	b := NormPiece{Type: board.O, Rotation: 0, X: 2}
	if !a.less(b) {
		t.Error("a should be less than b by X")
	}
	if a.geq(b) {
		t.Error("a should not be geq b")
	}
	if !b.geq(a) {
		t.Error("b should be geq a")
	}
}

func TestDistinctRotationsMatchesShapeVariety(t *testing.T) {
	if distinctRotations[board.O] != 1 {
		t.Errorf("O should have 1 distinct rotation, got %d", distinctRotations[board.O])
	}
	if distinctRotations[board.T] != 4 {
		t.Errorf("T should have 4 distinct rotations, got %d", distinctRotations[board.T])
	}
	if distinctRotations[board.I] != 2 {
		t.Errorf("I should have 2 distinct rotations, got %d", distinctRotations[board.I])
	}
}
