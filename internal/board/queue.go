package board

import "fmt"

// QueueCapacity is the maximum number of pieces a PieceQueue can hold. Three
// bits per element times 21 elements is 63 bits, fitting the 8-byte packed
// payload used by the binary wire format with one bit to spare.
const QueueCapacity = 21

// PieceQueue is a fixed-capacity FIFO of PieceType, packed 3 bits per
// element into a single uint64 so that the in-memory and on-wire
// representations are identical (see Pack/Unpack in pack.go). Index 0 is
// always the front of the queue.
type PieceQueue struct {
	payload uint64
	length  int
}

// Len returns the number of elements currently queued.
func (q *PieceQueue) Len() int {
	return q.length
}

// Enqueue appends t to the back of the queue. It returns an error if the
// queue is already at QueueCapacity.
func (q *PieceQueue) Enqueue(t PieceType) error {
	if q.length >= QueueCapacity {
		return fmt.Errorf("board: piece queue overflow (capacity %d)", QueueCapacity)
	}
	q.payload |= uint64(t) << uint(q.length*3)
	q.length++
	return nil
}

// Dequeue removes and returns the front element. ok is false if the queue
// is empty.
func (q *PieceQueue) Dequeue() (t PieceType, ok bool) {
	if q.length == 0 {
		return 0, false
	}
	t = PieceType(q.payload & 0x7)
	q.payload >>= 3
	q.length--
	return t, true
}

// Get returns the i-th element (0 = front) without removing it.
func (q *PieceQueue) Get(i int) (PieceType, error) {
	if i < 0 || i >= q.length {
		return 0, fmt.Errorf("board: piece queue index %d out of range [0,%d)", i, q.length)
	}
	return PieceType(q.payload >> uint(i*3) & 0x7), nil
}

// Iter calls f for every element front-to-back.
func (q *PieceQueue) Iter(f func(PieceType)) {
	for i := 0; i < q.length; i++ {
		f(PieceType(q.payload >> uint(i*3) & 0x7))
	}
}

// Slice materializes the queue contents as a []PieceType, front first.
func (q *PieceQueue) Slice() []PieceType {
	out := make([]PieceType, q.length)
	for i := range out {
		out[i] = PieceType(q.payload >> uint(i*3) & 0x7)
	}
	return out
}
