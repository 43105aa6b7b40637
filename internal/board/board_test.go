package board

import "testing"

func TestBoardGetSet(t *testing.T) {
	b := New()
	if b.Get(3, 5) {
		t.Fatal("expected empty board to report unfilled cells")
	}
	b.Set(3, 5, true)
	if !b.Get(3, 5) {
		t.Error("Set(3,5,true) did not take effect")
	}
	b.Set(3, 5, false)
	if b.Get(3, 5) {
		t.Error("Set(3,5,false) did not clear the cell")
	}
}

func TestBoardRowRoundTrip(t *testing.T) {
	b := New()
	b.SetRow(2, 0b0000011111)
	if b.Row(2) != 0b0000011111 {
		t.Errorf("Row(2) = %b, want %b", b.Row(2), 0b0000011111)
	}
	for x := 0; x < 5; x++ {
		if !b.Get(x, 2) {
			t.Errorf("column %d of row 2 should be filled", x)
		}
	}
}

func TestBoardLockClearsFullRows(t *testing.T) {
	b := New()
	for y := 0; y < 3; y++ {
		b.SetRow(y, fullRow)
	}
	// lock a shape that fills the whole width of row 3 too, so all four
	// rows clear at once.
	shape := [4]uint16{fullRow, 0, 0, 0}
	info := b.Lock(shape, 3)
	if info.LinesCleared != 4 {
		t.Fatalf("LinesCleared = %d, want 4", info.LinesCleared)
	}
	if info.TopOut {
		t.Error("clearing the stack should not top out")
	}
	if b.MaxHeight() != 0 {
		t.Errorf("board should be empty after clearing, MaxHeight = %d", b.MaxHeight())
	}
}

func TestBoardLockTopOut(t *testing.T) {
	b := New()
	b.Lock([4]uint16{1, 0, 0, 0}, VisibleHeight)
	if b.Row(VisibleHeight) == 0 {
		t.Fatal("setup: row VisibleHeight should be nonzero before the assertion lock")
	}
	info := b.Lock([4]uint16{0, 0, 0, 0}, 0)
	if !info.TopOut {
		t.Error("expected TopOut once row VisibleHeight is nonzero")
	}
}

func TestBoardHolesAndHeightMap(t *testing.T) {
	b := New()
	b.SetRow(0, 0) // empty bottom row
	b.SetRow(1, 1) // column 0 filled above a hole
	hm := b.HeightMap()
	if hm[0] != 2 {
		t.Errorf("HeightMap()[0] = %d, want 2", hm[0])
	}
	holes := b.Holes()
	if holes[0] != 1 {
		t.Errorf("Holes()[0] = %d, want 1 (the empty cell under row 1)", holes[0])
	}
	if b.TotalHoles() != 1 {
		t.Errorf("TotalHoles() = %d, want 1", b.TotalHoles())
	}
}

func TestBoardIntersects(t *testing.T) {
	b := New()
	b.SetRow(5, 1)
	shape := [4]uint16{1, 0, 0, 0}
	if !b.Intersects(shape, 5) {
		t.Error("expected intersection at row 5")
	}
	if b.Intersects(shape, 6) {
		t.Error("did not expect intersection at row 6")
	}
}

func TestCornerFilled(t *testing.T) {
	b := New()
	if !b.CornerFilled(-1, 5) {
		t.Error("off-board column should count as filled")
	}
	if !b.CornerFilled(5, -1) {
		t.Error("below-floor row should count as filled")
	}
	if b.CornerFilled(5, Height) {
		t.Error("above Height should not count as filled")
	}
	b.Set(2, 2, true)
	if !b.CornerFilled(2, 2) {
		t.Error("filled cell should report as filled")
	}
}
