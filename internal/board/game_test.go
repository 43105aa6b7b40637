package board

import "testing"

func TestNewGameFillsQueue(t *testing.T) {
	g := NewGame(NewFixedBag(All[:]))
	if g.Queue.Len() != QueueCapacity {
		t.Errorf("Queue.Len() = %d, want %d", g.Queue.Len(), QueueCapacity)
	}
	if !g.CanHold {
		t.Error("a fresh game should allow hold")
	}
	if g.ToppedOut {
		t.Error("a fresh game should not be topped out")
	}
}

func TestGameLockAdvancesQueue(t *testing.T) {
	g := NewGame(NewFixedBag([]PieceType{O, I, T}))
	before := g.Queue.Len()
	g.Active.SoftDrop(&g.Board)
	info, ok := g.Lock()
	if !ok {
		t.Fatal("Lock should succeed with a nonempty queue")
	}
	if info.TopOut {
		t.Error("locking onto an empty board should not top out")
	}
	if g.Queue.Len() != before-1 {
		t.Errorf("Queue.Len() after Lock = %d, want %d", g.Queue.Len(), before-1)
	}
	if g.Active.Type != I {
		t.Errorf("Active after locking O should be the next queued piece I, got %v", g.Active.Type)
	}
}

func TestGameSwapHoldFirstTime(t *testing.T) {
	g := NewGame(NewFixedBag([]PieceType{O, I, T}))
	first := g.Active.Type
	if !g.SwapHold() {
		t.Fatal("first hold should succeed")
	}
	if g.Hold != first {
		t.Errorf("Hold = %v, want %v", g.Hold, first)
	}
	if g.Active.Type != I {
		t.Errorf("Active after first hold should be the queue front I, got %v", g.Active.Type)
	}
	if g.CanHold {
		t.Error("CanHold should be false immediately after a hold")
	}
	if g.SwapHold() {
		t.Error("a second consecutive hold should be illegal")
	}
}

func TestGameSwapHoldSwapsBack(t *testing.T) {
	g := NewGame(NewFixedBag([]PieceType{O, I, T}))
	first := g.Active.Type
	g.SwapHold()
	g.Active.SoftDrop(&g.Board)
	g.Lock() // re-arms CanHold
	if !g.SwapHold() {
		t.Fatal("second hold should succeed once CanHold is re-armed")
	}
	if g.Active.Type != first {
		t.Errorf("Active after swapping hold back = %v, want %v", g.Active.Type, first)
	}
}

func TestGameApplyHardDropLocksAndAdvances(t *testing.T) {
	g := NewGame(NewFixedBag([]PieceType{O, I, T}))
	before := g.Queue.Len()
	_, ok := g.Apply(HardDrop)
	if !ok {
		t.Fatal("HardDrop should succeed from spawn")
	}
	if g.Queue.Len() != before-1 {
		t.Errorf("Queue.Len() after HardDrop = %d, want %d", g.Queue.Len(), before-1)
	}
}

func TestGameApplyUnknownActionIsNoop(t *testing.T) {
	g := NewGame(NewFixedBag([]PieceType{O}))
	if _, ok := g.Apply(Action(255)); ok {
		t.Error("an unrecognized action should report ok=false")
	}
}
