package pcgraph

import (
	"fmt"
	"math"

	"github.com/hailam/chessplay/internal/board"
)

// Solution is the result of a successful PC search: the full action
// sequence across every piece placement needed to reach the empty board.
type Solution struct {
	Actions []board.Action
}

// Solve runs the PC-playing AI atop an ActionTable described in C11: from
// board b with pieces (active piece first) yet to place, perform max-depth
// DFS where reaching the empty PcBoard scores +Inf, picking at each step the
// child maximizing the returned score. Returns an error if no sequence of
// placements clears the board.
func Solve(t *ActionTable, b PcBoard, pieces []board.PieceType) (Solution, error) {
	actions, ok := solveDFS(t, b, pieces)
	if !ok {
		return Solution{}, fmt.Errorf("pcgraph: no PC solution")
	}
	return Solution{Actions: actions}, nil
}

func solveDFS(t *ActionTable, b PcBoard, pieces []board.PieceType) ([]board.Action, bool) {
	if b == Empty {
		return nil, true
	}
	if len(pieces) == 0 {
		return nil, false
	}

	best := math.Inf(-1)
	var bestActions []board.Action
	found := false
	for _, child := range t.Leaves(b, pieces[0]) {
		rest, ok := solveDFS(t, child.Board, pieces[1:])
		score := math.Inf(-1)
		if ok {
			score = 0
			if child.Board == Empty {
				score = math.Inf(1)
			}
		}
		if ok && score > best {
			best = score
			bestActions = append(append([]board.Action{}, child.Actions...), rest...)
			found = true
		}
	}
	return bestActions, found
}
