package board

// Piece is an active, falling tetromino: its type, SRS rotation state, and
// the absolute board column/row of its local frame's origin.
type Piece struct {
	Type     PieceType
	Rotation int // 0..3
	X, Y     int
}

// NewPiece returns pt at its spawn orientation and location.
func NewPiece(pt PieceType) Piece {
	x, y := Spawn(pt)
	return Piece{Type: pt, Rotation: 0, X: x, Y: y}
}

// bitShape returns the piece's current 4-row bitmask.
func (p Piece) bitShape() [4]uint16 {
	return BitShape(p.Type, p.Rotation, p.X)
}

// Intersects reports whether p overlaps any filled cell of b.
func (p Piece) Intersects(b *Board) bool {
	return b.Intersects(p.bitShape(), p.Y)
}

// inBounds reports whether (x, y) is a legal origin for p's rotation.
func (p Piece) inBounds(r, x, y int) bool {
	bnd := LocationBounds(p.Type, r)
	return x >= bnd.XMin && x <= bnd.XMax && y >= bnd.YMin && y <= bnd.YMax
}

// Shift tentatively moves p by (dx, dy); it commits and returns true iff the
// new origin is within bounds and does not intersect b. On failure p is
// left unmodified.
func (p *Piece) Shift(dx, dy int, b *Board) bool {
	nx, ny := p.X+dx, p.Y+dy
	if !p.inBounds(p.Rotation, nx, ny) {
		return false
	}
	candidate := Piece{Type: p.Type, Rotation: p.Rotation, X: nx, Y: ny}
	if candidate.Intersects(b) {
		return false
	}
	*p = candidate
	return true
}

// Rotate attempts an SRS rotation by the given amount (1 = CW, 2 = 180,
// 3 = CCW), trying each kick offset from the SRS kick table in order. The
// first candidate that is in bounds and does not intersect b is accepted.
// On failure p is left unmodified.
func (p *Piece) Rotate(amount int, b *Board) bool {
	rFrom := p.Rotation
	rTo := (rFrom + amount) % numRotations
	for _, kick := range KickTable(p.Type, rFrom, rTo) {
		nx, ny := p.X+kick.DX, p.Y+kick.DY
		if !p.inBounds(rTo, nx, ny) {
			continue
		}
		candidate := Piece{Type: p.Type, Rotation: rTo, X: nx, Y: ny}
		if candidate.Intersects(b) {
			continue
		}
		*p = candidate
		return true
	}
	return false
}

// SoftDrop converges p downward to rest on b. It first computes the minimum
// per-column drop distance implied by p's local height map and b's height
// map; if that is positive it applies the whole drop in one step, otherwise
// it falls back to single-cell shifts (covering the case where a rotation
// has left the piece already resting against an overhang). Returns whether
// any downward motion occurred.
func (p *Piece) SoftDrop(b *Board) bool {
	dMin := p.minDropDistance(b)
	if dMin > 0 {
		p.Y -= dMin
		return true
	}
	moved := false
	for p.Shift(0, -1, b) {
		moved = true
	}
	return moved
}

// minDropDistance computes the largest y-decrement that keeps every column
// of p's footprint clear of the stack, using the column height maps the
// same way the original soft_drop optimization does: for each local column
// with a filled run, the distance to the stack top in the corresponding
// board column bounds how far that column may fall.
func (p Piece) minDropDistance(b *Board) int {
	hm := PieceHeightMap(p.Type, p.Rotation)
	boardHM := b.HeightMap()
	best := -1
	for i := 0; i < shapeSize; i++ {
		if hm[i].Low == -1 {
			continue
		}
		col := p.X + i
		if col < 0 || col >= Width {
			continue
		}
		pieceBottomY := p.Y + hm[i].Low
		drop := pieceBottomY - boardHM[col]
		if best == -1 || drop < best {
			best = drop
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// CornerFilled reports whether (x, y) is either left or right of the board,
// below the floor, or a filled cell — used by T-spin corner detection, where
// the board edge counts as a filled corner. Cells at or above Height count
// as empty.
func (b *Board) CornerFilled(x, y int) bool {
	if x < 0 || x >= Width || y < 0 {
		return true
	}
	if y >= Height {
		return false
	}
	return b.Get(x, y)
}
