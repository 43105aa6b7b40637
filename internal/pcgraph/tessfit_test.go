package pcgraph

import "testing"

// singlePieceTess builds a Tess whose only non-trivial piece covers shape;
// the remaining slots are zero-shaped and trivially fit anything.
func singlePieceTess(shape [pcRows]uint16) Tess {
	var tess Tess
	tess.Pieces[0] = NormPiece{Shape: shape}
	return tess
}

func TestFitsTessAcceptsExactMatch(t *testing.T) {
	shape := [pcRows]uint16{0b11, 0, 0, 0}
	tess := singlePieceTess(shape)
	if !fitsTess(shape, tess) {
		t.Error("a board equal to the piece's own shape should fit")
	}
}

func TestFitsTessAcceptsDisjointEmpty(t *testing.T) {
	shape := [pcRows]uint16{0b11, 0, 0, 0}
	tess := singlePieceTess(shape)
	empty := [pcRows]uint16{0, 0, 0, 0}
	if !fitsTess(empty, tess) {
		t.Error("an entirely empty board never conflicts with a piece's mask")
	}
}

func TestFitsTessRejectsPartialOverlap(t *testing.T) {
	shape := [pcRows]uint16{0b11, 0, 0, 0}
	tess := singlePieceTess(shape)
	mixed := [pcRows]uint16{0b01, 0, 0, 0}
	if fitsTess(mixed, tess) {
		t.Error("a board filling only half of a piece's cells should not fit")
	}
}

func TestBoardFitsTessWithNoEmptyRows(t *testing.T) {
	shape := [pcRows]uint16{0b11, 0, 0, 0}
	tess := singlePieceTess(shape)
	b := PcBoard{0b11, 0, 0, 0}
	if !boardFitsTess(b, tess) {
		t.Error("a board with zero empty rows should be tested as-is")
	}
}

func TestBoardFitsTessTreatsEmptyRowsAsFull(t *testing.T) {
	// A piece that occupies the top two rows entirely; the board has those
	// rows empty, which boardFitsTess may treat as already-full via PERMS.
	shape := [pcRows]uint16{0, 0, fullRow, fullRow}
	tess := singlePieceTess(shape)
	b := PcBoard{0, 0, 0, 0}
	if !boardFitsTess(b, tess) {
		t.Error("two empty rows permuted to the piece's full-row slots should fit")
	}
}

func TestFitsAnyTessFalseWhenNoneFit(t *testing.T) {
	shape := [pcRows]uint16{0b11, 0, 0, 0}
	tess := singlePieceTess(shape)
	// No row of b is empty, so none can be treated as already full, and
	// row 0 fills only half of the piece's cells.
	b := PcBoard{0b01, 0b01, 0b01, 0b01}
	if fitsAnyTess(b, []Tess{tess}) {
		t.Error("expected no tessellation to fit a partially-overlapping board")
	}
}
