package board

// Game composes a Board with the active piece, an optional held piece, and
// the upcoming piece queue, plus the can-hold lock. It intentionally holds no
// Bag: refilling the queue from a Bag is the caller's job (via RefillQueue),
// done once per real move rather than inside Lock/SwapHold, so that cloning a
// Game for the child-state generator never touches shared randomizer state.
type Game struct {
	Board   Board
	Active  Piece
	Hold    PieceType
	HasHold bool
	// CanHold is false from the moment a piece is held until the next lock;
	// holding twice in a row without an intervening lock is illegal.
	CanHold bool
	// ToppedOut is set once a lock tops out or a newly spawned piece
	// overlaps the stack. Apply and the actions it dispatches do not
	// consult it.
	ToppedOut bool

	Queue PieceQueue
}

// NewGame starts a fresh game fed by bag: the first piece is spawned active
// and the queue is filled to capacity.
func NewGame(bag Bag) *Game {
	g := &Game{CanHold: true}
	g.Active = NewPiece(bag.Next())
	RefillQueue(&g.Queue, bag)
	return g
}

// SwapHold exchanges Active with Hold (or, if Hold is empty, stashes Active
// there and promotes the queue front to Active). It fails if CanHold is false
// or, on a first hold, if the queue is empty.
func (g *Game) SwapHold() bool {
	if !g.CanHold {
		return false
	}
	var next PieceType
	if g.HasHold {
		next = g.Hold
	} else {
		pt, ok := g.Queue.Dequeue()
		if !ok {
			return false
		}
		next = pt
	}
	g.Hold = g.Active.Type
	g.HasHold = true
	g.Active = NewPiece(next)
	g.CanHold = false
	if g.Active.Intersects(&g.Board) {
		g.ToppedOut = true
	}
	return true
}

// Lock locks Active into Board at its current position, clears any full
// rows, re-arms CanHold, and promotes the queue front to Active. It fails if
// the queue is empty.
func (g *Game) Lock() (LockInfo, bool) {
	pt, ok := g.Queue.Dequeue()
	if !ok {
		return LockInfo{}, false
	}
	info := g.Board.Lock(g.Active.bitShape(), g.Active.Y)
	if info.TopOut {
		g.ToppedOut = true
	}
	g.Active = NewPiece(pt)
	g.CanHold = true
	if g.Active.Intersects(&g.Board) {
		g.ToppedOut = true
	}
	return info, true
}

// HardDrop drops Active to rest and locks it in a single step. It fails if
// the queue is empty.
func (g *Game) HardDrop() (LockInfo, bool) {
	if g.Queue.Len() == 0 {
		return LockInfo{}, false
	}
	g.Active.SoftDrop(&g.Board)
	return g.Lock()
}

// Apply executes one Action against the game, returning the resulting
// LockInfo (zero-valued for actions that don't lock) and whether the action
// was legal/had an effect.
func (g *Game) Apply(a Action) (LockInfo, bool) {
	switch a {
	case ShiftLeft:
		return LockInfo{}, g.Active.Shift(-1, 0, &g.Board)
	case ShiftRight:
		return LockInfo{}, g.Active.Shift(1, 0, &g.Board)
	case ShiftDown:
		return LockInfo{}, g.Active.Shift(0, -1, &g.Board)
	case RotateCw:
		return LockInfo{}, g.Active.Rotate(1, &g.Board)
	case Rotate180:
		return LockInfo{}, g.Active.Rotate(2, &g.Board)
	case RotateCcw:
		return LockInfo{}, g.Active.Rotate(3, &g.Board)
	case SoftDrop:
		return LockInfo{}, g.Active.SoftDrop(&g.Board)
	case HardDrop:
		return g.HardDrop()
	case Hold:
		return LockInfo{}, g.SwapHold()
	case Lock:
		return g.Lock()
	default:
		return LockInfo{}, false
	}
}
