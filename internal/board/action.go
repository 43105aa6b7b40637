package board

import "fmt"

// Action is one of the ten primitive inputs a Game accepts. The numeric
// values and kebab-case String() form match the wire encoding in the game's
// external interface exactly.
type Action uint8

const (
	ShiftLeft Action = iota
	ShiftRight
	ShiftDown
	RotateCw
	Rotate180
	RotateCcw
	SoftDrop
	HardDrop
	Hold
	Lock
	numActions
)

var actionNames = [numActions]string{
	ShiftLeft:  "shift-left",
	ShiftRight: "shift-right",
	ShiftDown:  "shift-down",
	RotateCw:   "rotate-cw",
	Rotate180:  "rotate-180",
	RotateCcw:  "rotate-ccw",
	SoftDrop:   "soft-drop",
	HardDrop:   "hard-drop",
	Hold:       "hold",
	Lock:       "lock",
}

// String returns the hyphenated kebab-case wire form of a.
func (a Action) String() string {
	if a >= numActions {
		return "?"
	}
	return actionNames[a]
}

// ParseAction converts a kebab-case wire string back into an Action.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("board: invalid action %q", s)
}

// ActionsString renders a sequence of actions as their kebab-case forms.
func ActionsString(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}
