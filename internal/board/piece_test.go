package board

import "testing"

func TestNewPieceSpawnsWithoutIntersecting(t *testing.T) {
	b := New()
	for pt := PieceType(0); pt < NumPieceTypes; pt++ {
		p := NewPiece(pt)
		if p.Intersects(&b) {
			t.Errorf("%v should not intersect an empty board at spawn", pt)
		}
	}
}

func TestPieceShiftRespectsBounds(t *testing.T) {
	b := New()
	p := NewPiece(O)
	bnd := LocationBounds(O, 0)
	for p.Shift(-1, 0, &b) {
	}
	if p.X != bnd.XMin {
		t.Errorf("after shifting left repeatedly X = %d, want %d", p.X, bnd.XMin)
	}
	if p.Shift(-1, 0, &b) {
		t.Error("Shift should fail once the piece is at XMin")
	}
}

func TestPieceShiftBlockedByStack(t *testing.T) {
	b := New()
	p := NewPiece(O)
	// fill the entire column immediately to the left of the piece's
	// footprint (the O's local column 0 is empty, so that is column p.X),
	// so any row the shifted shape could occupy intersects it.
	for y := 0; y < Height; y++ {
		b.Set(p.X, y, true)
	}
	if p.Shift(-1, 0, &b) {
		t.Error("Shift should fail when the destination intersects the stack")
	}
}

func TestPieceSoftDropRestsOnFloor(t *testing.T) {
	b := New()
	p := NewPiece(T)
	moved := p.SoftDrop(&b)
	if !moved {
		t.Fatal("SoftDrop from spawn height should move the piece down")
	}
	if p.Intersects(&b) {
		t.Error("piece should not intersect after resting")
	}
	// one more downward shift should now be illegal.
	if p.Shift(0, -1, &b) {
		t.Error("piece should already be resting on the floor")
	}
}

func TestPieceSoftDropOnStack(t *testing.T) {
	b := New()
	for x := 0; x < Width; x++ {
		if x < SpawnColumn || x > SpawnColumn+3 {
			b.Set(x, 0, true)
		}
	}
	p := NewPiece(O)
	p.SoftDrop(&b)
	if p.Intersects(&b) {
		t.Error("piece should rest without intersecting the stack")
	}
}

func TestPieceRotateOAlwaysSucceedsInPlace(t *testing.T) {
	b := New()
	p := NewPiece(O)
	x, y := p.X, p.Y
	if !p.Rotate(1, &b) {
		t.Fatal("O rotation should always succeed (no kicks needed, shape is invariant)")
	}
	if p.X != x || p.Y != y {
		t.Errorf("O rotation should not move the origin, got (%d,%d) want (%d,%d)", p.X, p.Y, x, y)
	}
}

func TestPieceRotateFailsWhenWalledIn(t *testing.T) {
	b := New()
	p := NewPiece(I)
	// A completely solid board means every rotation candidate, kicked or
	// not, intersects the stack somewhere.
	for y := 0; y < Height; y++ {
		b.SetRow(y, fullRow)
	}
	if p.Rotate(1, &b) {
		t.Error("rotation should fail when every kick candidate intersects the stack")
	}
}
