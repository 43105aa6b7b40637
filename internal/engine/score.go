package engine

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hailam/chessplay/internal/board"
)

// Weights is the linear scoring model's 12-dimensional parameter vector: three
// node features (board-shape penalties) and two families of edge features
// (reward for clearing lines, split by whether the clear was a T-spin). A
// genetic driver external to this package evolves these weights; this package
// only scores a position against a given vector and (de)serializes it.
type Weights struct {
	// F1 penalizes stack height: (max height)^2.
	F1 float64
	// F2 penalizes bumpiness: sum over adjacent column pairs of (delta height)^2.
	F2 float64
	// F3 penalizes holes: sum over columns of holes beneath the column's own
	// highest filled cell.
	F3 float64

	// G indexes by lines cleared (0..4) on a non-T-spin lock.
	G [5]float64

	// H indexes by lines cleared (1..4) on a T-spin lock. There is no H[0]
	// entry: a T-spin that clears no lines scores nothing extra beyond the
	// node features of the resulting board.
	H [4]float64
}

// WeightCount is the number of float64 parameters in a Weights vector.
const WeightCount = 3 + 5 + 4

// NodeScore scores a board position on its own shape, independent of how it
// was reached: taller stacks, bumpier skylines, and more buried holes all
// score worse.
func NodeScore(b *board.Board, w Weights) float64 {
	hm := b.HeightMap()

	maxHeight := 0
	for _, h := range hm {
		if h > maxHeight {
			maxHeight = h
		}
	}
	f1 := float64(maxHeight) * float64(maxHeight)

	f2 := 0.0
	for x := 0; x < board.Width-1; x++ {
		d := hm[x] - hm[x+1]
		f2 += float64(d * d)
	}

	f3 := float64(b.TotalHoles())

	return w.F1*f1 + w.F2*f2 + w.F3*f3
}

// EdgeScore scores the transition a lock makes: clearing lines is rewarded,
// and a T-spin clear is rewarded on its own scale rather than the standard
// one, since a T-spin of n lines is a harder-to-set-up, more valuable clear
// than an ordinary n-line clear.
func EdgeScore(info board.LockInfo, w Weights) float64 {
	n := info.LinesCleared
	if n < 0 {
		n = 0
	}
	if n > 4 {
		n = 4
	}
	if info.TSpin {
		if n == 0 {
			return 0
		}
		return w.H[n-1]
	}
	return w.G[n]
}

// MarshalWeights serializes w as 12 big-endian IEEE-754 float32 values (48
// bytes total) in the fixed order F1, F2, F3, G[0..4], H[0..3]. The wire
// format is float32 even though Weights itself carries float64 internally,
// since the score-parameter string is defined as 48 bytes (12 x 4).
func MarshalWeights(w Weights) []byte {
	values := w.flatten()
	buf := make([]byte, WeightCount*4)
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(float32(v)))
	}
	return buf
}

// UnmarshalWeights reverses MarshalWeights.
func UnmarshalWeights(data []byte) (Weights, error) {
	if len(data) != WeightCount*4 {
		return Weights{}, fmt.Errorf("engine: weights must be %d bytes, got %d", WeightCount*4, len(data))
	}
	var values [WeightCount]float64
	for i := range values {
		bits := binary.BigEndian.Uint32(data[i*4 : i*4+4])
		values[i] = float64(math.Float32frombits(bits))
	}
	return unflattenWeights(values), nil
}

// WeightsFromBase64 decodes a weight vector packed with WeightsToBase64.
func WeightsFromBase64(text string) (Weights, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Weights{}, fmt.Errorf("engine: invalid base64 weights: %w", err)
	}
	return UnmarshalWeights(data)
}

// WeightsToBase64 encodes w the way MarshalWeights does, then base64-encodes
// the result (standard alphabet, matching the genetic driver's exchange
// format rather than the URL-safe alphabet used by the board package's game
// packing).
func WeightsToBase64(w Weights) string {
	return base64.StdEncoding.EncodeToString(MarshalWeights(w))
}

func (w Weights) flatten() [WeightCount]float64 {
	var out [WeightCount]float64
	out[0] = w.F1
	out[1] = w.F2
	out[2] = w.F3
	copy(out[3:8], w.G[:])
	copy(out[8:12], w.H[:])
	return out
}

func unflattenWeights(values [WeightCount]float64) Weights {
	var w Weights
	w.F1 = values[0]
	w.F2 = values[1]
	w.F3 = values[2]
	copy(w.G[:], values[3:8])
	copy(w.H[:], values[8:12])
	return w
}
