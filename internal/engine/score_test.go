package engine

import (
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func sampleWeights() Weights {
	return Weights{
		F1: -1.0, F2: -0.5, F3: -2.0,
		G: [5]float64{0, 1, 2, 4, 8},
		H: [4]float64{3, 6, 9, 12},
	}
}

func TestMarshalWeightsLength(t *testing.T) {
	data := MarshalWeights(sampleWeights())
	if len(data) != 48 {
		t.Fatalf("MarshalWeights length = %d, want 48", len(data))
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	want := sampleWeights()
	data := MarshalWeights(want)
	got, err := UnmarshalWeights(data)
	if err != nil {
		t.Fatalf("UnmarshalWeights failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestWeightsToBase64Length(t *testing.T) {
	text := WeightsToBase64(sampleWeights())
	if len(text) != 64 {
		t.Fatalf("WeightsToBase64 length = %d, want 64", len(text))
	}
}

func TestWeightsBase64RoundTrip(t *testing.T) {
	want := sampleWeights()
	text := WeightsToBase64(want)
	got, err := WeightsFromBase64(text)
	if err != nil {
		t.Fatalf("WeightsFromBase64 failed: %v", err)
	}
	if got != want {
		t.Errorf("base64 round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestUnmarshalWeightsRejectsWrongLength(t *testing.T) {
	if _, err := UnmarshalWeights(make([]byte, 47)); err == nil {
		t.Error("expected an error for a 47-byte payload")
	}
	if _, err := UnmarshalWeights(make([]byte, 96)); err == nil {
		t.Error("expected an error for a 96-byte (float64-sized) payload")
	}
}

func TestNodeScorePenalizesHeight(t *testing.T) {
	w := Weights{F1: -1}
	flat := board.New()
	tall := board.New()
	tall.SetRow(0, 1)
	tall.SetRow(1, 1)
	tall.SetRow(2, 1)

	flatScore := NodeScore(&flat, w)
	tallScore := NodeScore(&tall, w)
	if tallScore >= flatScore {
		t.Errorf("a taller stack should score worse under a negative F1 weight: flat=%v tall=%v", flatScore, tallScore)
	}
}

func TestNodeScorePenalizesHoles(t *testing.T) {
	w := Weights{F3: -1}

	withHole := board.New()
	withHole.SetRow(1, 1) // column 0 filled at row 1
	withHole.SetRow(0, 0) // column 0 empty at row 0: one hole beneath it

	noHole := board.New()
	noHole.SetRow(0, 1)
	noHole.SetRow(1, 1)

	if NodeScore(&withHole, w) >= NodeScore(&noHole, w) {
		t.Error("a board with a buried hole should score worse than one without, under a negative F3 weight")
	}
}

func TestEdgeScoreOrdinaryClear(t *testing.T) {
	w := sampleWeights()
	got := EdgeScore(board.LockInfo{LinesCleared: 2}, w)
	if got != w.G[2] {
		t.Errorf("EdgeScore(2 lines) = %v, want G[2]=%v", got, w.G[2])
	}
}

func TestEdgeScoreTSpinClear(t *testing.T) {
	w := sampleWeights()
	got := EdgeScore(board.LockInfo{LinesCleared: 2, TSpin: true}, w)
	if got != w.H[1] {
		t.Errorf("EdgeScore(T-spin 2 lines) = %v, want H[1]=%v", got, w.H[1])
	}
}

func TestEdgeScoreTSpinNoClear(t *testing.T) {
	w := sampleWeights()
	got := EdgeScore(board.LockInfo{LinesCleared: 0, TSpin: true}, w)
	if got != 0 {
		t.Errorf("EdgeScore(T-spin, 0 lines) = %v, want 0", got)
	}
}

func TestEdgeScoreClampsOutOfRangeLines(t *testing.T) {
	w := sampleWeights()
	got := EdgeScore(board.LockInfo{LinesCleared: 9}, w)
	if got != w.G[4] {
		t.Errorf("EdgeScore should clamp to G[4] for an out-of-range line count, got %v want %v", got, w.G[4])
	}
}
