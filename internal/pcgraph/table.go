package pcgraph

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/hailam/chessplay/internal/board"
)

// TableChild is one edge's destination as recorded in an ActionTable: the
// resulting board and the compact action sequence that reaches it.
type TableChild struct {
	Board   PcBoard
	Actions []board.Action
}

// tableKey is the (PcBoard, PieceType) lookup key C11 indexes by.
type tableKey struct {
	Board PcBoard
	Piece board.PieceType
}

// ActionTable is the compact representation of the C10 graph C11 describes:
// keyed by (PcBoard, PieceType), valued by every distinct reachable child
// with the first action sequence that reaches it (the shortest, since
// board.Game.Children already keeps only the shortest sequence per resulting
// board).
type ActionTable struct {
	entries map[tableKey][]TableChild
}

// NewActionTable returns an empty table.
func NewActionTable() *ActionTable {
	return &ActionTable{entries: make(map[tableKey][]TableChild)}
}

// Leaves returns every (child, actions) reachable from b by locking piece,
// in the order they were inserted.
func (t *ActionTable) Leaves(b PcBoard, piece board.PieceType) []TableChild {
	return t.entries[tableKey{Board: b, Piece: piece}]
}

func lessBoard(a, b PcBoard) bool {
	for i := 0; i < pcRows; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// BuildActionTable runs C11: from the pruned C10 edge set, collect the
// unique parent boards, sort them for deterministic output, and for each
// (parent, PieceType) regenerate children at finesse depth Full3, keeping
// only children that are themselves pruned-graph nodes, deduplicated by
// child board with the first action sequence encountered winning. Ported
// from original_source/pc-finder/src/generate/table.rs's construct_table.
func BuildActionTable(ctx context.Context, pruned []Edge) (*ActionTable, error) {
	parentSet := make(map[PcBoard]bool)
	nodeSet := make(map[PcBoard]bool)
	for _, e := range pruned {
		parentSet[e.Parent] = true
		nodeSet[e.Parent] = true
		nodeSet[e.Child] = true
	}
	parents := make([]PcBoard, 0, len(parentSet))
	for p := range parentSet {
		parents = append(parents, p)
	}
	sort.Slice(parents, func(i, j int) bool { return lessBoard(parents[i], parents[j]) })

	table := NewActionTable()
	for _, parent := range parents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, pt := range board.All {
			g := newExploreGame(parent, pt)
			seen := make(map[PcBoard]bool)
			key := tableKey{Board: parent, Piece: pt}
			for _, c := range g.Children(board.FinFull3) {
				if c.Game.ToppedOut {
					continue
				}
				child, err := FromBoard(&c.Game.Board)
				if err != nil || !nodeSet[child] || seen[child] {
					continue
				}
				seen[child] = true
				table.entries[key] = append(table.entries[key], TableChild{Board: child, Actions: c.Actions()})
			}
		}
	}
	return table, nil
}

// Pack serializes t as: a 4-byte key count, then per key a (PcBoard as 4x2
// bytes, PieceType as 1 byte, child count as 2 bytes, then per child a
// PcBoard and an action-count byte followed by that many action bytes).
func (t *ActionTable) Pack() []byte {
	keys := make([]tableKey, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Piece != keys[j].Piece {
			return keys[i].Piece < keys[j].Piece
		}
		return lessBoard(keys[i].Board, keys[j].Board)
	})

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(len(keys)))
	for _, k := range keys {
		buf = append(buf, packBoard(k.Board)...)
		buf = append(buf, byte(k.Piece))
		children := t.entries[k]
		var cnt [2]byte
		binary.BigEndian.PutUint16(cnt[:], uint16(len(children)))
		buf = append(buf, cnt[:]...)
		for _, c := range children {
			buf = append(buf, packBoard(c.Board)...)
			buf = append(buf, byte(len(c.Actions)))
			for _, a := range c.Actions {
				buf = append(buf, byte(a))
			}
		}
	}
	return buf
}

// Unpack reverses Pack.
func Unpack(data []byte) (*ActionTable, error) {
	t := NewActionTable()
	pos := 0
	readU32 := func() (uint32, error) {
		if pos+4 > len(data) {
			return 0, fmt.Errorf("pcgraph: truncated table")
		}
		v := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4
		return v, nil
	}
	readU16 := func() (uint16, error) {
		if pos+2 > len(data) {
			return 0, fmt.Errorf("pcgraph: truncated table")
		}
		v := binary.BigEndian.Uint16(data[pos : pos+2])
		pos += 2
		return v, nil
	}
	readBoard := func() (PcBoard, error) {
		if pos+pcRows*2 > len(data) {
			return PcBoard{}, fmt.Errorf("pcgraph: truncated table")
		}
		var b PcBoard
		for i := 0; i < pcRows; i++ {
			b[i] = binary.BigEndian.Uint16(data[pos : pos+2])
			pos += 2
		}
		return b, nil
	}

	numKeys, err := readU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numKeys; i++ {
		b, err := readBoard()
		if err != nil {
			return nil, err
		}
		if pos >= len(data) {
			return nil, fmt.Errorf("pcgraph: truncated table")
		}
		piece := board.PieceType(data[pos])
		pos++
		count, err := readU16()
		if err != nil {
			return nil, err
		}
		key := tableKey{Board: b, Piece: piece}
		children := make([]TableChild, 0, count)
		for j := uint16(0); j < count; j++ {
			cb, err := readBoard()
			if err != nil {
				return nil, err
			}
			if pos >= len(data) {
				return nil, fmt.Errorf("pcgraph: truncated table")
			}
			n := int(data[pos])
			pos++
			if pos+n > len(data) {
				return nil, fmt.Errorf("pcgraph: truncated table")
			}
			actions := make([]board.Action, n)
			for k := 0; k < n; k++ {
				actions[k] = board.Action(data[pos+k])
			}
			pos += n
			children = append(children, TableChild{Board: cb, Actions: actions})
		}
		t.entries[key] = children
	}
	return t, nil
}

func packBoard(b PcBoard) []byte {
	out := make([]byte, pcRows*2)
	for i := 0; i < pcRows; i++ {
		binary.BigEndian.PutUint16(out[i*2:i*2+2], b[i])
	}
	return out
}
