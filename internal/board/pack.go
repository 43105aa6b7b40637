package board

import (
	"encoding/base64"
	"fmt"
)

// PackBuffer accumulates bytes for the binary wire format, the same
// role a move-encoding scratch buffer plays: a thin little-endian writer
// with no allocation surprises.
type PackBuffer struct {
	buf []byte
}

func NewPackBuffer() *PackBuffer { return &PackBuffer{} }

func (b *PackBuffer) Bytes() []byte { return b.buf }

func (b *PackBuffer) WriteU8(v uint8) { b.buf = append(b.buf, v) }

func (b *PackBuffer) WriteI8(v int8) { b.WriteU8(uint8(v)) }

// WritePacked appends the low n bytes (little-endian) of v.
func (b *PackBuffer) WritePacked(v uint64, n int) {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, byte(v>>uint(i*8)))
	}
}

// PackCursor reads back a buffer produced by PackBuffer.
type PackCursor struct {
	bytes []byte
	head  int
}

func NewPackCursor(bytes []byte) *PackCursor {
	return &PackCursor{bytes: bytes}
}

func (c *PackCursor) Len() int { return len(c.bytes) - c.head }

func (c *PackCursor) Finished() bool { return c.Len() == 0 }

func (c *PackCursor) read(n int) ([]byte, error) {
	if c.head+n > len(c.bytes) {
		return nil, fmt.Errorf("board: pack cursor read past end of bytes")
	}
	s := c.bytes[c.head : c.head+n]
	c.head += n
	return s, nil
}

func (c *PackCursor) ReadU8() (uint8, error) {
	s, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

func (c *PackCursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadPacked reads n little-endian bytes into the low bits of a uint64.
func (c *PackCursor) ReadPacked(n int) (uint64, error) {
	s, err := c.read(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i, by := range s {
		v |= uint64(by) << uint(i*8)
	}
	return v, nil
}

// PackPiece writes the 4-byte wire form of p: type, rotation, x, y.
func PackPiece(buf *PackBuffer, p Piece) {
	buf.WriteU8(uint8(p.Type))
	buf.WriteI8(int8(p.Rotation))
	buf.WriteI8(int8(p.X))
	buf.WriteI8(int8(p.Y))
}

// UnpackPiece reads back a Piece written by PackPiece.
func UnpackPiece(cur *PackCursor) (Piece, error) {
	ptByte, err := cur.ReadU8()
	if err != nil {
		return Piece{}, err
	}
	pt := PieceType(ptByte)
	if !pt.Valid() {
		return Piece{}, fmt.Errorf("board: invalid packed piece type %d", ptByte)
	}
	rot, err := cur.ReadI8()
	if err != nil {
		return Piece{}, err
	}
	x, err := cur.ReadI8()
	if err != nil {
		return Piece{}, err
	}
	y, err := cur.ReadI8()
	if err != nil {
		return Piece{}, err
	}
	return Piece{Type: pt, Rotation: int(rot), X: int(x), Y: int(y)}, nil
}

// PackBoard writes the board as 6 groups of 4 rows, each group packed into
// 5 bytes (40 bits: four 10-bit rows), 30 bytes total.
func PackBoard(buf *PackBuffer, b *Board) {
	for i := 0; i < Height/4; i++ {
		var accum uint64
		for j := 0; j < 4; j++ {
			row := uint64(b.rows[i*4+j])
			accum |= row << uint(j*10)
		}
		buf.WritePacked(accum, 5)
	}
}

// UnpackBoard reads back a Board written by PackBoard.
func UnpackBoard(cur *PackCursor) (Board, error) {
	var b Board
	for i := 0; i < Height/4; i++ {
		accum, err := cur.ReadPacked(5)
		if err != nil {
			return Board{}, err
		}
		for j := 0; j < 4; j++ {
			row := uint16(accum>>uint(j*10)) & ((1 << 10) - 1)
			b.SetRow(i*4+j, row)
		}
	}
	return b, nil
}

// PackQueue writes the queue as a length byte followed by its 8-byte
// little-endian packed payload (3 bits per element, front first).
func PackQueue(buf *PackBuffer, q *PieceQueue) {
	buf.WriteU8(uint8(q.Len()))
	buf.WritePacked(q.payload, 8)
}

// UnpackQueue reads back a PieceQueue written by PackQueue.
func UnpackQueue(cur *PackCursor) (PieceQueue, error) {
	n, err := cur.ReadU8()
	if err != nil {
		return PieceQueue{}, err
	}
	payload, err := cur.ReadPacked(8)
	if err != nil {
		return PieceQueue{}, err
	}
	if int(n) > QueueCapacity || payload>>(uint(n)*3) != 0 {
		return PieceQueue{}, fmt.Errorf("board: invalid packed queue of length %d", n)
	}
	var q PieceQueue
	for i := 0; i < int(n); i++ {
		pt := PieceType(payload >> uint(i*3) & 0x7)
		if !pt.Valid() {
			return PieceQueue{}, fmt.Errorf("board: invalid packed queue piece type %d", pt)
		}
		if err := q.Enqueue(pt); err != nil {
			return PieceQueue{}, err
		}
	}
	return q, nil
}

const noHold uint8 = 255

// PackGame writes the full wire form of g: board, active piece, hold
// (255 = none), queue, can-hold flag.
func PackGame(g *Game) []byte {
	buf := NewPackBuffer()
	PackBoard(buf, &g.Board)
	PackPiece(buf, g.Active)
	if g.HasHold {
		buf.WriteU8(uint8(g.Hold))
	} else {
		buf.WriteU8(noHold)
	}
	PackQueue(buf, &g.Queue)
	if g.CanHold {
		buf.WriteU8(1)
	} else {
		buf.WriteU8(0)
	}
	return buf.Bytes()
}

// UnpackGame reads back a Game written by PackGame. The resulting Game has
// ToppedOut left false; callers that need it should re-derive it.
func UnpackGame(data []byte) (*Game, error) {
	cur := NewPackCursor(data)
	board, err := UnpackBoard(cur)
	if err != nil {
		return nil, err
	}
	active, err := UnpackPiece(cur)
	if err != nil {
		return nil, err
	}
	holdByte, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	g := &Game{Board: board, Active: active}
	if holdByte != noHold {
		pt := PieceType(holdByte)
		if !pt.Valid() {
			return nil, fmt.Errorf("board: invalid packed hold piece type %d", holdByte)
		}
		g.Hold = pt
		g.HasHold = true
	}
	queue, err := UnpackQueue(cur)
	if err != nil {
		return nil, err
	}
	g.Queue = queue
	canHoldByte, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	switch canHoldByte {
	case 0:
		g.CanHold = false
	case 1:
		g.CanHold = true
	default:
		return nil, fmt.Errorf("board: invalid packed bool byte %d", canHoldByte)
	}
	if !cur.Finished() {
		return nil, fmt.Errorf("board: expected end of pack cursor")
	}
	return g, nil
}

// PackGameBase64 packs g and URL-safe base64-encodes the result.
func PackGameBase64(g *Game) string {
	return base64.URLEncoding.EncodeToString(PackGame(g))
}

// UnpackGameBase64 reverses PackGameBase64.
func UnpackGameBase64(text string) (*Game, error) {
	data, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("board: invalid base64 game encoding: %w", err)
	}
	return UnpackGame(data)
}
