package pcgraph

import "github.com/hailam/chessplay/internal/board"

// NormPiece is a tetromino placement normalized into the four-row
// tessellation region: a piece type, one of its distinct rotations, and an
// absolute column, together with the four-row bitmask that placement
// occupies. Ported from original_source/pc-finder/src/generate/
// tessellation.rs's generate_all_norm_pieces, using board.BitShape directly
// rather than re-deriving piece geometry, since BitShape's four local rows
// are already position-independent in Y.
type NormPiece struct {
	Type     board.PieceType
	Rotation int
	X        int
	Shape    [pcRows]uint16
}

// distinctRotations is the number of rotation states that produce a
// geometrically distinct shape for each piece type (O has one, I/S/Z have
// two, T/L/J have four).
var distinctRotations = [board.NumPieceTypes]int{
	board.O: 1,
	board.I: 2,
	board.T: 4,
	board.L: 4,
	board.J: 4,
	board.S: 2,
	board.Z: 2,
}

// less implements the canonical total order C9 needs to dedupe
// tessellations up to piece enumeration order: by piece type, then
// rotation, then column.
func (n NormPiece) less(o NormPiece) bool {
	if n.Type != o.Type {
		return n.Type < o.Type
	}
	if n.Rotation != o.Rotation {
		return n.Rotation < o.Rotation
	}
	return n.X < o.X
}

func (n NormPiece) geq(o NormPiece) bool {
	return !n.less(o)
}

// allNormPieces enumerates every NormPiece in canonical order, deduping
// placements that happen to produce an identical shape under a different
// (rotation, column) pair.
func allNormPieces() []NormPiece {
	var out []NormPiece
	seen := make(map[[pcRows]uint16]bool)
	for _, pt := range board.All {
		for r := 0; r < distinctRotations[pt]; r++ {
			bnd := board.LocationBounds(pt, r)
			for x := bnd.XMin; x <= bnd.XMax; x++ {
				shape := board.BitShape(pt, r, x)
				var s [pcRows]uint16
				copy(s[:], shape[:])
				if seen[s] {
					continue
				}
				seen[s] = true
				out = append(out, NormPiece{Type: pt, Rotation: r, X: x, Shape: s})
			}
		}
	}
	return out
}
