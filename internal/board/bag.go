package board

import "math/rand/v2"

// Bag is an infinite piece-type randomizer.
type Bag interface {
	Next() PieceType
}

// FixedBag cycles a fixed sequence of piece types forever.
type FixedBag struct {
	sequence []PieceType
	pos      int
}

// NewFixedBag returns a Bag that repeats sequence indefinitely.
func NewFixedBag(sequence []PieceType) *FixedBag {
	cp := make([]PieceType, len(sequence))
	copy(cp, sequence)
	return &FixedBag{sequence: cp}
}

// Next returns the next piece in the cycle.
func (f *FixedBag) Next() PieceType {
	pt := f.sequence[f.pos%len(f.sequence)]
	f.pos++
	return pt
}

// Rng7Bag shuffles the full 7-piece set with a seeded PRNG each time its
// internal queue runs dry ("7-bag" randomizer), deterministic for a given
// seed.
type Rng7Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewRng7Bag returns a deterministic 7-bag randomizer seeded from seed.
func NewRng7Bag(seed int64) *Rng7Bag {
	s := uint64(seed)
	return &Rng7Bag{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Next returns the next piece, reshuffling a fresh permutation of all seven
// piece types whenever the internal queue is empty.
func (r *Rng7Bag) Next() PieceType {
	if len(r.queue) == 0 {
		r.queue = r.shuffled()
	}
	pt := r.queue[0]
	r.queue = r.queue[1:]
	return pt
}

// shuffled produces one Fisher-Yates permutation of All, ported from the
// original Rng7::next: for i from the last index down to 1, swap position i
// with a uniformly sampled j in [0, i).
func (r *Rng7Bag) shuffled() []PieceType {
	arr := All
	out := make([]PieceType, len(arr))
	copy(out, arr[:])
	for i := len(out) - 1; i >= 1; i-- {
		j := r.rng.IntN(i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RefillQueue pulls from bag until q reaches QueueCapacity.
func RefillQueue(q *PieceQueue, bag Bag) {
	for q.Len() < QueueCapacity {
		if err := q.Enqueue(bag.Next()); err != nil {
			return
		}
	}
}
