// Package pcgraph implements the perfect-clear tessellation enumerator
// (C9), graph builder (C10), and action table (C11): offline tools that
// precompute, for the bottom four rows of an otherwise empty board, every
// reachable board-to-board transition that keeps a perfect clear possible.
package pcgraph

import (
	"fmt"

	"github.com/hailam/chessplay/internal/board"
)

// pcRows is the height of the perfect-clear region: four rows of board.Width
// columns each, 40 cells total, matching ten tetrominoes' worth of area.
const pcRows = 4

// PcBoard is the bottom four rows of a board, bit-packed one uint16 per row
// exactly like board.Board's row representation, so a board.Board's bottom
// rows slice directly into a PcBoard with no bit-shuffling.
type PcBoard [pcRows]uint16

// Empty is the PcBoard with no filled cells: the root of the C10 graph and
// the unique accepting state of a perfect clear.
var Empty PcBoard

// Get reports whether column x, row y (0 = bottom) is filled.
func (p PcBoard) Get(x, y int) bool {
	return p[y]&(1<<uint(x)) != 0
}

// Intersects reports whether shape overlaps any filled cell of p.
func (p PcBoard) Intersects(shape [pcRows]uint16) bool {
	for y := 0; y < pcRows; y++ {
		if p[y]&shape[y] != 0 {
			return true
		}
	}
	return false
}

// Lock returns p with shape's cells filled in, as by a hard-drop lock.
func (p PcBoard) Lock(shape [pcRows]uint16) PcBoard {
	var out PcBoard
	for y := 0; y < pcRows; y++ {
		out[y] = p[y] | shape[y]
	}
	return out
}

// FromBoard converts a board.Board's bottom pcRows rows into a PcBoard,
// failing if anything is stacked above row pcRows (such a board cannot be
// a node of the C10 graph: a perfect clear requires the whole stack to fit
// in the tessellation region).
func FromBoard(b *board.Board) (PcBoard, error) {
	var p PcBoard
	for y := 0; y < pcRows; y++ {
		p[y] = b.Row(y)
	}
	for y := pcRows; y < board.VisibleHeight; y++ {
		if b.Row(y) != 0 {
			return PcBoard{}, fmt.Errorf("pcgraph: board has filled cells above row %d", pcRows)
		}
	}
	return p, nil
}

// ToBoard renders p as a fresh board.Board with only its four rows set.
func (p PcBoard) ToBoard() board.Board {
	var b board.Board
	var rows [board.Height]uint16
	for y := 0; y < pcRows; y++ {
		rows[y] = p[y]
	}
	b.SetMatrix(rows)
	return b
}

// String renders p as four rows of '#'/'.' from top to bottom, for debug
// output in CLI tools.
func (p PcBoard) String() string {
	out := make([]byte, 0, (board.Width+1)*pcRows)
	for y := pcRows - 1; y >= 0; y-- {
		for x := 0; x < board.Width; x++ {
			if p.Get(x, y) {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
