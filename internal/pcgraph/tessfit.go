package pcgraph

import "github.com/hailam/chessplay/internal/board"

const fullRow = uint16(1<<uint(board.Width) - 1)

// rowPerms lists, for each number of empty rows 0..4, every way to insert
// that many "already full" rows among the board's four real rows before
// testing tessellation fit. Index 4 (marker) means "treat as a full row";
// ported from explore.rs's PERMS table.
var rowPerms = [5][][4]int{
	0: {{0, 1, 2, 3}},
	1: {{4, 0, 1, 2}, {0, 4, 1, 2}, {0, 1, 4, 2}, {0, 1, 2, 4}},
	2: {
		{4, 4, 0, 1}, {4, 0, 4, 1}, {4, 0, 1, 4},
		{0, 4, 4, 1}, {0, 4, 1, 4}, {0, 1, 4, 4},
	},
	3: {{4, 4, 4, 0}, {4, 0, 4, 4}, {4, 4, 0, 4}, {0, 4, 4, 4}},
	4: {},
}

// fitsTess reports whether test's filled cells do not overlap tess's empty
// cells, or equivalently, for every piece in tess, the masked bits of test
// are either all board bits or all background bits (never a mix) — the
// necessary condition for test's empty cells to still be tileable by tess.
func fitsTess(test [pcRows]uint16, tess Tess) bool {
	for _, p := range tess.Pieces {
		mask := p.Shape
		var normal, invert uint16
		for i := 0; i < pcRows; i++ {
			normal |= test[i] & mask[i]
			invert |= ^test[i] & mask[i]
		}
		if normal != 0 && invert != 0 {
			return false
		}
	}
	return true
}

// boardFitsTess reports whether b fits tess after optionally treating some
// of b's empty rows as already-full rows — a cheap necessary condition used
// to prune the forward BFS in C10 to boards that can still reach a perfect
// clear under tess. Ported from explore.rs's board_fits_tess.
func boardFitsTess(b PcBoard, tess Tess) bool {
	clearRows := 0
	for _, row := range b {
		if row == 0 {
			clearRows++
		}
	}
	for n := 0; n <= clearRows && n <= 4; n++ {
		for _, perm := range rowPerms[n] {
			var test [pcRows]uint16
			for i, idx := range perm {
				if idx == 4 {
					test[i] = fullRow
				} else {
					test[i] = b[idx]
				}
			}
			if fitsTess(test, tess) {
				return true
			}
		}
	}
	return false
}

// fitsAnyTess reports whether b fits at least one of the given
// tessellations.
func fitsAnyTess(b PcBoard, tessellations []Tess) bool {
	for _, t := range tessellations {
		if boardFitsTess(b, t) {
			return true
		}
	}
	return false
}
