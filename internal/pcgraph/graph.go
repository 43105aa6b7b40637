package pcgraph

import (
	"context"

	"github.com/hailam/chessplay/internal/board"
)

// sentinelQueue is the one-piece lookahead every exploratory Game in C10/C11
// carries, so that the no-hold hold-branch (which dequeues the queue front
// to fill the vacated Active slot) always has something to dequeue. The
// piece itself is never placed; only Active's type varies across the
// per-PieceType fan-out.
var sentinelQueue = board.O

func newExploreGame(p PcBoard, active board.PieceType) *board.Game {
	g := &board.Game{CanHold: true}
	g.Board = p.ToBoard()
	g.Active = board.NewPiece(active)
	g.Queue.Enqueue(sentinelQueue)
	return g
}

// Edge is one directed transition of the C10 graph: locking some PieceType
// into Parent via Actions produces Child.
type Edge struct {
	Parent  PcBoard
	Child   PcBoard
	Piece   board.PieceType
	Actions []board.Action
}

// ExploreGraph runs C10 step 1: BFS from the empty PcBoard, trying every
// PieceType's child-state generator at finesse depth Full3 against each
// popped board, keeping only children that still fit at least one
// tessellation from tessellations. Ported from original_source/pc-finder/
// src/generate/explore.rs's explore_bfs.
func ExploreGraph(ctx context.Context, tessellations []Tess) ([]Edge, error) {
	visited := map[PcBoard]bool{Empty: true}
	queue := []PcBoard{Empty}
	var edges []Edge

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parent := queue[0]
		queue = queue[1:]

		for _, pt := range board.All {
			g := newExploreGame(parent, pt)
			for _, c := range g.Children(board.FinFull3) {
				if c.Game.ToppedOut {
					continue
				}
				child, err := FromBoard(&c.Game.Board)
				if err != nil {
					continue
				}
				if !fitsAnyTess(child, tessellations) {
					continue
				}
				edges = append(edges, Edge{Parent: parent, Child: child, Piece: pt, Actions: c.Actions()})
				if !visited[child] {
					visited[child] = true
					queue = append(queue, child)
				}
			}
		}
	}
	return edges, nil
}

// PruneToCoReachable runs C10 step 2: discard every node (and edge touching
// it) that cannot reach the empty board, by BFS over the reverse edges
// recorded during ExploreGraph.
func PruneToCoReachable(edges []Edge) []Edge {
	reverse := make(map[PcBoard][]PcBoard)
	for _, e := range edges {
		reverse[e.Child] = append(reverse[e.Child], e.Parent)
	}

	coReachable := map[PcBoard]bool{Empty: true}
	queue := []PcBoard{Empty}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, parent := range reverse[node] {
			if !coReachable[parent] {
				coReachable[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	pruned := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if coReachable[e.Parent] && coReachable[e.Child] {
			pruned = append(pruned, e)
		}
	}
	return pruned
}
