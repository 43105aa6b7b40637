package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomGame builds a plausible mid-game Game: a partially filled board with
// no complete rows (so Lock never clears it out from under us), a random
// active piece, a random queue, and a coin-flip hold slot.
func randomGame(t *testing.T, rng *rand.Rand) *Game {
	t.Helper()
	g := &Game{}
	for y := 0; y < VisibleHeight/2; y++ {
		row := uint16(rng.IntN(1 << Width))
		row &^= 1 << uint(rng.IntN(Width)) // guarantee at least one empty column
		g.Board.SetRow(y, row)
	}
	g.Active = NewPiece(PieceType(rng.IntN(NumPieceTypes)))
	g.CanHold = rng.IntN(2) == 0
	if rng.IntN(2) == 0 {
		g.Hold = PieceType(rng.IntN(NumPieceTypes))
		g.HasHold = true
	}
	n := rng.IntN(QueueCapacity + 1)
	for i := 0; i < n; i++ {
		require.NoError(t, g.Queue.Enqueue(PieceType(rng.IntN(NumPieceTypes))))
	}
	return g
}

func TestPackGameRoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		g := randomGame(t, rng)
		data := PackGame(g)
		back, err := UnpackGame(data)
		require.NoError(t, err)
		require.Equal(t, g.Board, back.Board, "board should round-trip exactly")
		require.Equal(t, g.Active, back.Active, "active piece should round-trip exactly")
		require.Equal(t, g.Hold, back.Hold)
		require.Equal(t, g.HasHold, back.HasHold)
		require.Equal(t, g.CanHold, back.CanHold)
		require.Equal(t, g.Queue, back.Queue, "queue should round-trip exactly")
	}
}

func TestPackGameBase64RoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20; i++ {
		g := randomGame(t, rng)
		text := PackGameBase64(g)
		back, err := UnpackGameBase64(text)
		require.NoError(t, err)
		require.Equal(t, g.Board, back.Board)
		require.Equal(t, g.Queue, back.Queue)
	}
}

func TestHashIsStableAcrossEqualBoards(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 20; i++ {
		g := randomGame(t, rng)
		data := PackGame(g)
		back, err := UnpackGame(data)
		require.NoError(t, err)
		require.Equal(t, g.Board.Hash(), back.Board.Hash(), "identical boards must hash identically")
	}
}
