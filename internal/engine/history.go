package engine

import "go-soko/internal/board"

// DefaultHistorySize is how many moves can be undone.
const DefaultHistorySize = 6

// BoxMove records a box displacement caused by one player move. The zero
// value is the "no box moved" sentinel.
type BoxMove struct {
	From  board.Position
	To    board.Position
	Moved bool
}

var noBoxMove = BoxMove{}

// ring is a fixed-capacity buffer. Push evicts the oldest entry when full;
// Pop returns the newest.
type ring[T any] struct {
	items []T
	head  int // index of the oldest entry
	count int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) Len() int { return r.count }
func (r *ring[T]) Cap() int { return len(r.items) }

func (r *ring[T]) Push(v T) {
	if r.count == len(r.items) {
		r.items[r.head] = v
		r.head = (r.head + 1) % len(r.items)
		return
	}
	r.items[(r.head+r.count)%len(r.items)] = v
	r.count++
}

func (r *ring[T]) Pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	r.count--
	idx := (r.head + r.count) % len(r.items)
	v := r.items[idx]
	r.items[idx] = zero
	return v, true
}

func (r *ring[T]) Clear() {
	clear(r.items)
	r.head = 0
	r.count = 0
}
