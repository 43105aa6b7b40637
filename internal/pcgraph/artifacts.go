package pcgraph

import (
	"encoding/binary"
	"fmt"

	"github.com/hailam/chessplay/internal/board"
)

// PackTessellations serializes a Tess slice as a 4-byte count followed by,
// per tessellation, ten (PieceType byte, rotation byte, column byte)
// triples (the NormPiece's Shape is re-derived from these on unpack via
// board.BitShape, since it is a pure function of them).
func PackTessellations(tessellations []Tess) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(len(tessellations)))
	for _, t := range tessellations {
		for _, p := range t.Pieces {
			buf = append(buf, byte(p.Type), byte(p.Rotation), byte(int8(p.X)))
		}
	}
	return buf
}

// UnpackTessellations reverses PackTessellations.
func UnpackTessellations(data []byte) ([]Tess, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("pcgraph: truncated tessellations")
	}
	count := binary.BigEndian.Uint32(data[:4])
	pos := 4
	out := make([]Tess, 0, count)
	for i := uint32(0); i < count; i++ {
		var tess Tess
		for j := 0; j < piecesPerTess; j++ {
			if pos+3 > len(data) {
				return nil, fmt.Errorf("pcgraph: truncated tessellations")
			}
			pt := board.PieceType(data[pos])
			rot := int(data[pos+1])
			x := int(int8(data[pos+2]))
			pos += 3
			shape := board.BitShape(pt, rot, x)
			var s [pcRows]uint16
			copy(s[:], shape[:])
			tess.Pieces[j] = NormPiece{Type: pt, Rotation: rot, X: x, Shape: s}
		}
		out = append(out, tess)
	}
	return out, nil
}

// PackEdges serializes an Edge slice as a 4-byte count followed by, per
// edge, (parent PcBoard, child PcBoard, piece byte, action-count byte, that
// many action bytes).
func PackEdges(edges []Edge) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(len(edges)))
	for _, e := range edges {
		buf = append(buf, packBoard(e.Parent)...)
		buf = append(buf, packBoard(e.Child)...)
		buf = append(buf, byte(e.Piece), byte(len(e.Actions)))
		for _, a := range e.Actions {
			buf = append(buf, byte(a))
		}
	}
	return buf
}

// UnpackEdges reverses PackEdges.
func UnpackEdges(data []byte) ([]Edge, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("pcgraph: truncated edges")
	}
	count := binary.BigEndian.Uint32(data[:4])
	pos := 4
	readBoard := func() (PcBoard, error) {
		if pos+pcRows*2 > len(data) {
			return PcBoard{}, fmt.Errorf("pcgraph: truncated edges")
		}
		var b PcBoard
		for i := 0; i < pcRows; i++ {
			b[i] = binary.BigEndian.Uint16(data[pos : pos+2])
			pos += 2
		}
		return b, nil
	}
	out := make([]Edge, 0, count)
	for i := uint32(0); i < count; i++ {
		parent, err := readBoard()
		if err != nil {
			return nil, err
		}
		child, err := readBoard()
		if err != nil {
			return nil, err
		}
		if pos+2 > len(data) {
			return nil, fmt.Errorf("pcgraph: truncated edges")
		}
		piece := board.PieceType(data[pos])
		n := int(data[pos+1])
		pos += 2
		if pos+n > len(data) {
			return nil, fmt.Errorf("pcgraph: truncated edges")
		}
		actions := make([]board.Action, n)
		for k := 0; k < n; k++ {
			actions[k] = board.Action(data[pos+k])
		}
		pos += n
		out = append(out, Edge{Parent: parent, Child: child, Piece: piece, Actions: actions})
	}
	return out, nil
}
