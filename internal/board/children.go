package board

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Fin selects how many "tweak" permutations the child-state generator tries
// after the soft-drop convergence at each (hold, rotation, column)
// combination, trading search breadth for generation cost.
type Fin int

const (
	FinNone Fin = iota
	FinSimple1
	FinSimple2
	FinSimple3
	FinFull1
	FinFull2
	FinFull3
	numFins
)

func (f Fin) String() string {
	switch f {
	case FinNone:
		return "none"
	case FinSimple1:
		return "simple1"
	case FinSimple2:
		return "simple2"
	case FinSimple3:
		return "simple3"
	case FinFull1:
		return "full1"
	case FinFull2:
		return "full2"
	case FinFull3:
		return "full3"
	default:
		return "?"
	}
}

// PermSet is an ordered list of tweak sequences tried in that order. On a
// dedup collision the child with the shorter action sequence is kept; among
// equal lengths the one generated first wins.
type PermSet [][]Action

func (f Fin) permSet() PermSet { return fins[f] }

var fins [numFins]PermSet

func init() {
	simple := PermSet{
		{},
		{RotateCw},
		{RotateCcw},
		{ShiftLeft},
		{ShiftRight},
	}
	full := PermSet{
		{},
		{RotateCw},
		{Rotate180},
		{RotateCcw},
		{ShiftLeft},
		{ShiftRight},
	}
	product := func(a, b PermSet) PermSet {
		out := make(PermSet, 0, len(a)*len(b))
		for _, pa := range a {
			for _, pb := range b {
				seq := make([]Action, 0, len(pa)+len(pb))
				seq = append(seq, pa...)
				seq = append(seq, pb...)
				out = append(out, seq)
			}
		}
		return out
	}

	fins[FinNone] = PermSet{{}}
	fins[FinSimple1] = simple
	fins[FinSimple2] = product(simple, simple)
	fins[FinSimple3] = product(simple, product(simple, simple))
	fins[FinFull1] = full
	fins[FinFull2] = product(full, full)
	fins[FinFull3] = product(full, product(full, full))
}

// Child is one lock-final successor state reachable from a Game's active
// piece, together with enough of how it was reached to reconstruct the exact
// input sequence and to break dedup ties by sequence length.
type Child struct {
	Game      Game
	Hold      bool
	Rotate    int
	Shift     int
	Fin       Fin
	FinIdx    int
	LockInfo  LockInfo
	ActionLen int
}

// Actions reconstructs the exact primitive action sequence that produces
// this child from the Game Children was called on: an optional Hold, the
// base rotation, the column shift, an optional SoftDrop convergence, the
// chosen tweak sequence, and a final HardDrop.
func (c Child) Actions() []Action {
	var out []Action
	if c.Hold {
		out = append(out, Hold)
	}
	switch c.Rotate {
	case 1:
		out = append(out, RotateCw)
	case 2:
		out = append(out, Rotate180)
	case 3:
		out = append(out, RotateCcw)
	}
	if c.Shift < 0 {
		for i := 0; i < -c.Shift; i++ {
			out = append(out, ShiftLeft)
		}
	} else {
		for i := 0; i < c.Shift; i++ {
			out = append(out, ShiftRight)
		}
	}
	seq := c.Fin.permSet()[c.FinIdx]
	if len(seq) > 0 {
		out = append(out, SoftDrop)
	}
	out = append(out, seq...)
	out = append(out, HardDrop)
	return out
}

func rotateAction(amount int) Action {
	switch amount {
	case 1:
		return RotateCw
	case 2:
		return Rotate180
	case 3:
		return RotateCcw
	default:
		return numActions
	}
}

func isRotateAction(a Action) bool {
	return a == RotateCw || a == Rotate180 || a == RotateCcw
}

// countTSpinCorners counts how many of a T piece's 3x3 bounding-box corners
// are filled in b (board edges count as filled). The box is centered on the
// piece's rotation pivot, which sits at local (1,1) for every rotation of a
// 3-wide shape, so the corner offsets are rotation-invariant.
func countTSpinCorners(p Piece, b *Board) int {
	corners := [4][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}}
	n := 0
	for _, c := range corners {
		if b.CornerFilled(p.X+c[0], p.Y+c[1]) {
			n++
		}
	}
	return n
}

// Children enumerates every reachable lock-final successor of g's active
// piece: two hold branches times four rotations times every legal column,
// each followed by the tweak permutations named by fin, deduplicated by
// (hold, resulting board) with the shortest action sequence winning ties.
func (g Game) Children(fin Fin) []Child {
	set := newBoardSet()
	for _, hold := range [2]bool{false, true} {
		for r := 0; r < 4; r++ {
			for _, c := range g.childrenBranch(hold, r, fin) {
				set.insert(c)
			}
		}
	}
	return set.entriesInOrder()
}

// ChildrenPar computes the same result as Children but fans the eight
// (hold, rotation) branches out across goroutines via errgroup, merging
// their candidates into a single deduplication pass afterward so the result
// is identical to Children's regardless of completion order.
func (g Game) ChildrenPar(ctx context.Context, fin Fin) ([]Child, error) {
	type branch struct {
		hold   bool
		rotate int
	}
	branches := make([]branch, 0, 8)
	for _, hold := range [2]bool{false, true} {
		for r := 0; r < 4; r++ {
			branches = append(branches, branch{hold, r})
		}
	}

	results := make([][]Child, len(branches))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, br := range branches {
		i, br := i, br
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			results[i] = g.childrenBranch(br.hold, br.rotate, fin)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	set := newBoardSet()
	for _, res := range results {
		for _, c := range res {
			set.insert(c)
		}
	}
	return set.entriesInOrder(), nil
}

// childrenBranch generates every child for one (hold, rotate) branch.
func (g Game) childrenBranch(hold bool, rotate int, fin Fin) []Child {
	base := g
	if hold {
		if ok := base.SwapHold(); !ok {
			return nil
		}
	}

	rg := base
	ok := true
	switch rotate {
	case 0:
	case 1:
		_, ok = rg.Apply(RotateCw)
	case 2:
		_, ok = rg.Apply(Rotate180)
	case 3:
		_, ok = rg.Apply(RotateCcw)
	}
	if !ok {
		return nil
	}

	var out []Child
	bnd := LocationBounds(rg.Active.Type, rg.Active.Rotation)

shiftLoop:
	for x := bnd.XMin; x <= bnd.XMax; x++ {
		sg := rg
		shift := x - sg.Active.X
		lastAction := -1

		if shift < 0 {
			for i := 0; i < -shift; i++ {
				if _, ok := sg.Apply(ShiftLeft); !ok {
					continue shiftLoop
				}
				lastAction = int(ShiftLeft)
			}
		} else {
			for i := 0; i < shift; i++ {
				if _, ok := sg.Apply(ShiftRight); !ok {
					continue shiftLoop
				}
				lastAction = int(ShiftRight)
			}
		}
		if lastAction == -1 && rotate != 0 {
			lastAction = int(rotateAction(rotate))
		}

		perms := fin.permSet()
		for idx, seq := range perms {
			fg := sg
			la := lastAction

			if len(seq) > 0 {
				if _, ok := fg.Apply(SoftDrop); !ok {
					continue
				}
			}
			failed := false
			for _, action := range seq {
				if _, ok := fg.Apply(action); !ok {
					failed = true
					break
				}
				la = int(action)
			}
			if failed {
				continue
			}

			boardBeforeLock := fg.Board
			fg.Active.SoftDrop(&fg.Board)
			lockedPiece := fg.Active
			info, ok := fg.Lock()
			if !ok {
				continue
			}
			if lockedPiece.Type == T && la >= 0 && isRotateAction(Action(la)) {
				if countTSpinCorners(lockedPiece, &boardBeforeLock) >= 3 {
					info.TSpin = true
				}
			}

			child := Child{
				Game:     fg,
				Hold:     hold,
				Rotate:   rotate,
				Shift:    shift,
				Fin:      fin,
				FinIdx:   idx,
				LockInfo: info,
			}
			child.ActionLen = len(child.Actions())
			out = append(out, child)
		}
	}
	return out
}

// boardSet is an open-addressed table of Child keyed by (hold, board),
// preserving first-insertion order for iteration and breaking collisions in
// favor of the shorter action sequence.
const boardSetBuckets = 255

type boardSetEntry struct {
	child Child
	used  bool
}

type boardSet struct {
	entries [boardSetBuckets]boardSetEntry
	order   []int
}

func newBoardSet() *boardSet {
	return &boardSet{}
}

func (s *boardSet) insert(c Child) {
	idx := int(c.Game.Board.HashWithHold(c.Hold) % boardSetBuckets)
	for s.entries[idx].used {
		e := &s.entries[idx]
		if e.child.Hold == c.Hold && e.child.Game.Board == c.Game.Board {
			if c.ActionLen < e.child.ActionLen {
				e.child = c
			}
			return
		}
		idx = (idx + 1) % boardSetBuckets
	}
	s.entries[idx] = boardSetEntry{child: c, used: true}
	s.order = append(s.order, idx)
}

func (s *boardSet) entriesInOrder() []Child {
	out := make([]Child, len(s.order))
	for i, idx := range s.order {
		out[i] = s.entries[idx].child
	}
	return out
}
