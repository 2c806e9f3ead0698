package flow

// Ring is a bounded FIFO queue. It holds exactly Cap items; Push on a full
// ring is refused and leaves the contents untouched.
//
// Not safe for concurrent use.
type Ring[T any] struct {
	buf  []T
	head int // next read
	n    int
}

// NewRing creates a ring holding up to capacity items.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("flow: ring capacity must be positive")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) Len() int    { return r.n }
func (r *Ring[T]) Cap() int    { return len(r.buf) }
func (r *Ring[T]) Empty() bool { return r.n == 0 }
func (r *Ring[T]) Full() bool  { return r.n == len(r.buf) }

// Push appends v at the tail. Returns false when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	if r.Full() {
		return false
	}
	tail := r.head + r.n
	if tail >= len(r.buf) {
		tail -= len(r.buf)
	}
	r.buf[tail] = v
	r.n++
	return true
}

// Pop removes the item at the head.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.n--
	return v, true
}

// Reset empties the ring.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.head, r.n = 0, 0
}
