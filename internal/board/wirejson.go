package board

import (
	"encoding/json"
	"fmt"
)

// jsonPiece mirrors the wire form of an active or held piece: a single
// character type plus SRS rotation state and board-absolute origin.
type jsonPiece struct {
	PieceType string `json:"pieceType"`
	Rotation  int    `json:"rotation"`
	PositionX int    `json:"positionX"`
	PositionY int    `json:"positionY"`
}

// jsonInput mirrors the JSON request body one submits to evaluate a
// position: the board (either 240 space/non-space characters, column-major,
// or 24 10-bit row masks; the 20-row visible-only forms of 200 characters or
// 20 masks are accepted too), the active piece, an optional held piece, the
// upcoming queue, and whether hold is currently available.
type jsonInput struct {
	Board   json.RawMessage `json:"board"`
	Active  jsonPiece       `json:"active"`
	Hold    *string         `json:"hold"`
	Queue   []string        `json:"queue"`
	CanHold bool            `json:"canHold"`
}

// GameFromJSON decodes and validates a wire request into a Game. The board
// is accepted in either documented representation (a 240-character
// column-major string, or an array of 24 10-bit row integers); the active
// piece and hold are decoded from their single-character PieceType wire
// form; the queue seeds the game's upcoming pieces directly (no bag
// randomization — the request names every upcoming piece explicitly).
func GameFromJSON(data []byte) (*Game, error) {
	var in jsonInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("board: invalid JSON game request: %w", err)
	}

	rows, err := decodeBoardJSON(in.Board)
	if err != nil {
		return nil, err
	}

	activeType, err := ParsePieceType(firstByte(in.Active.PieceType))
	if err != nil {
		return nil, fmt.Errorf("board: invalid active piece: %w", err)
	}

	queueTypes := make([]PieceType, len(in.Queue))
	for i, s := range in.Queue {
		pt, err := ParsePieceType(firstByte(s))
		if err != nil {
			return nil, fmt.Errorf("board: invalid queue entry %d: %w", i, err)
		}
		queueTypes[i] = pt
	}
	if len(queueTypes) > 21 {
		return nil, fmt.Errorf("board: queue has %d entries, want at most 21", len(queueTypes))
	}

	g := &Game{
		Active: Piece{
			Type:     activeType,
			Rotation: in.Active.Rotation,
			X:        in.Active.PositionX,
			Y:        in.Active.PositionY,
		},
		CanHold: in.CanHold,
	}
	g.Board.SetMatrix(rows)
	if g.Active.Intersects(&g.Board) {
		g.ToppedOut = true
	}
	for _, pt := range queueTypes {
		if err := g.Queue.Enqueue(pt); err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	if in.Hold != nil {
		pt, err := ParsePieceType(firstByte(*in.Hold))
		if err != nil {
			return nil, fmt.Errorf("board: invalid hold piece: %w", err)
		}
		g.Hold = pt
		g.HasHold = true
	}
	return g, nil
}

func firstByte(s string) byte {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// decodeBoardJSON accepts either documented board representation: a single
// 240-character string (column-major, space = empty, anything else =
// filled), or an array of Height 10-bit row integers. Both also accept the
// visible-only form covering VisibleHeight rows (200 characters or 20 rows),
// leaving the rows above empty.
func decodeBoardJSON(raw json.RawMessage) ([Height]uint16, error) {
	var rows [Height]uint16

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if len(asString) != Width*Height && len(asString) != Width*VisibleHeight {
			return rows, fmt.Errorf("board: invalid board string length %d, want %d or %d", len(asString), Width*Height, Width*VisibleHeight)
		}
		n := len(asString) / Width
		for x := 0; x < Width; x++ {
			for y := 0; y < n; y++ {
				if asString[x*n+y] != ' ' {
					rows[y] |= 1 << uint(x)
				}
			}
		}
		return rows, nil
	}

	var asInts []uint16
	if err := json.Unmarshal(raw, &asInts); err != nil {
		return rows, fmt.Errorf("board: invalid board representation: %w", err)
	}
	if len(asInts) != Height && len(asInts) != VisibleHeight {
		return rows, fmt.Errorf("board: invalid board row count %d, want %d or %d", len(asInts), Height, VisibleHeight)
	}
	for y, mask := range asInts {
		if mask >= 1<<Width {
			return rows, fmt.Errorf("board: row %d mask %d has bits outside width %d", y, mask, Width)
		}
		rows[y] = mask
	}
	return rows, nil
}

// Evaluation is the result of asking the search for the best move from a
// position: either a successful action sequence with an optional score, or
// a failure reason (e.g. no legal child states).
type Evaluation struct {
	Moves []Action
	Score *float64
	Err   string
}

type jsonOutputSuccess struct {
	Success bool     `json:"success"`
	Actions []string `json:"actions"`
	Score   *float64 `json:"score"`
}

type jsonOutputFail struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MarshalJSON renders an Evaluation as the untagged success/fail wire
// response: {success:true, actions, score} or {success:false, message}.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	if e.Err != "" {
		return json.Marshal(jsonOutputFail{Success: false, Message: e.Err})
	}
	return json.Marshal(jsonOutputSuccess{
		Success: true,
		Actions: ActionsString(e.Moves),
		Score:   e.Score,
	})
}
