package pcgraph

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestSolveOnAlreadyEmptyBoard(t *testing.T) {
	tab := NewActionTable()
	sol, err := Solve(tab, Empty, []board.PieceType{board.T})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(sol.Actions) != 0 {
		t.Errorf("expected no actions when already clear, got %v", sol.Actions)
	}
}

func TestSolveFailsWithNoPieces(t *testing.T) {
	tab := NewActionTable()
	start := PcBoard{0b1, 0, 0, 0}
	if _, err := Solve(tab, start, nil); err == nil {
		t.Error("expected an error when pieces run out before reaching empty")
	}
}

func TestSolveFindsShortestPathToEmpty(t *testing.T) {
	tab := NewActionTable()
	start := PcBoard{0b1, 0, 0, 0}
	tab.entries[tableKey{Board: start, Piece: board.T}] = []TableChild{
		{Board: PcBoard{0b10, 0, 0, 0}, Actions: []board.Action{board.ShiftRight}},
		{Board: Empty, Actions: []board.Action{board.HardDrop}},
	}
	sol, err := Solve(tab, start, []board.PieceType{board.T})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(sol.Actions) != 1 || sol.Actions[0] != board.HardDrop {
		t.Errorf("Actions = %v, want [hard-drop]", sol.Actions)
	}
}

func TestSolveFailsWhenNoLeavesMatch(t *testing.T) {
	tab := NewActionTable()
	start := PcBoard{0b1, 0, 0, 0}
	if _, err := Solve(tab, start, []board.PieceType{board.T}); err == nil {
		t.Error("expected an error when the table has no entry for this board/piece")
	}
}
