// Package board implements the Tetris board representation using bitboards:
// the playing field, the seven piece shapes and their SRS kinematics, the
// hold/queue/bag machinery, and the child-state generator used by search.
package board

import "fmt"

// PieceType is one of the seven tetromino shapes. The ordering below is the
// canonical total order used to de-duplicate tessellations in the pcgraph package
// and to index every per-piece table in this package.
type PieceType uint8

const (
	O PieceType = iota
	I
	T
	L
	J
	S
	Z
	NumPieceTypes = 7
)

// All lists every PieceType in canonical order.
var All = [NumPieceTypes]PieceType{O, I, T, L, J, S, Z}

// String returns the single-character wire representation of the piece type.
func (pt PieceType) String() string {
	switch pt {
	case O:
		return "O"
	case I:
		return "I"
	case T:
		return "T"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// ParsePieceType converts a single wire character into a PieceType.
func ParsePieceType(c byte) (PieceType, error) {
	switch c {
	case 'O':
		return O, nil
	case 'I':
		return I, nil
	case 'T':
		return T, nil
	case 'L':
		return L, nil
	case 'J':
		return J, nil
	case 'S':
		return S, nil
	case 'Z':
		return Z, nil
	default:
		return 0, fmt.Errorf("board: invalid piece type character %q", c)
	}
}

// Valid reports whether pt is one of the seven defined piece types.
func (pt PieceType) Valid() bool {
	return pt < NumPieceTypes
}
