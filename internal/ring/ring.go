// Package ring provides a fixed-capacity circular buffer for bounded
// trailing windows.
package ring

import "errors"

// ErrInvalidCapacity is returned when constructing a ring with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("ring: capacity must be a positive integer")

// Ring is a fixed-capacity circular buffer. Once capacity insertions have
// happened, each Push silently overwrites the oldest stored item, so memory
// stays bounded regardless of how many items are pushed over the lifetime
// of the ring.
//
// Ring is not safe for concurrent use.
type Ring[T any] struct {
	items []T
	next  int // index of the next write
	size  int // number of stored items, at most len(items)
}

// New creates a Ring with the given capacity.
// Returns ErrInvalidCapacity when capacity is not positive.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Ring[T]{items: make([]T, capacity)}, nil
}

// Push inserts an item, overwriting the oldest stored item once the ring is
// full. Push never fails and runs in O(1).
func (r *Ring[T]) Push(item T) {
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.size < len(r.items) {
		r.size++
	}
}

// Snapshot returns the stored items in insertion order, oldest first. The
// returned slice is a copy: mutating it does not affect the ring, and later
// pushes do not affect the snapshot.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, 0, r.size)
	start := r.next - r.size
	if start < 0 {
		start += len(r.items)
	}
	for i := 0; i < r.size; i++ {
		out = append(out, r.items[(start+i)%len(r.items)])
	}
	return out
}

// Last returns the most recently pushed item. The second return value is
// false when nothing has been pushed yet.
func (r *Ring[T]) Last() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	idx := r.next - 1
	if idx < 0 {
		idx += len(r.items)
	}
	return r.items[idx], true
}

// Len returns the number of currently stored items.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity set at construction.
func (r *Ring[T]) Cap() int { return len(r.items) }
