package engine

import "time"

// Budget bounds how long a single Evaluate call may run. Unlike a chess
// engine's time manager, there is no opponent clock to divide: a Tetris AI
// evaluates one position in isolation, so the only inputs are a caller-given
// deadline and, optionally, a node count ceiling.
type Budget struct {
	deadline  time.Time
	hasLimit  bool
	maxNodes  uint64
	hasNodes  bool
	nodes     uint64
	startTime time.Time
}

// NewBudget returns a Budget with no limits: Search runs to completion.
func NewBudget() *Budget {
	return &Budget{}
}

// WithTimeLimit returns a Budget that stops once d has elapsed since this
// call (the deadline is fixed here, not at Start). d <= 0 means no limit.
func WithTimeLimit(d time.Duration) *Budget {
	b := &Budget{}
	b.hasLimit = d > 0
	if b.hasLimit {
		b.deadline = time.Now().Add(d)
	}
	return b
}

// WithNodeLimit returns a Budget that stops once maxNodes nodes have been
// counted via Tick.
func WithNodeLimit(maxNodes uint64) *Budget {
	return &Budget{maxNodes: maxNodes, hasNodes: maxNodes > 0}
}

// Start records the search start time; call once before the first Tick.
func (b *Budget) Start() {
	b.startTime = time.Now()
	if b.hasLimit && b.deadline.Before(b.startTime) {
		b.deadline = b.startTime.Add(0)
	}
}

// Tick counts one searched node and reports whether the budget is exhausted.
// Callers should only check cheaply (e.g. every few hundred nodes), the same
// way a negamax search checks its stop flag on a node-count mask rather than
// on every node.
func (b *Budget) Tick() bool {
	b.nodes++
	return b.Exhausted()
}

// Exhausted reports whether either the time deadline or node ceiling has
// been reached.
func (b *Budget) Exhausted() bool {
	if b.hasNodes && b.nodes >= b.maxNodes {
		return true
	}
	if b.hasLimit && !time.Now().Before(b.deadline) {
		return true
	}
	return false
}

// Elapsed returns the time since Start.
func (b *Budget) Elapsed() time.Duration {
	return time.Since(b.startTime)
}

// Nodes returns the number of Tick calls made so far.
func (b *Budget) Nodes() uint64 {
	return b.nodes
}
