// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded ring buffer.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's head position, and vice versa,
// so the opposite index is only loaded when the ring looks full or empty.
//
// One slot is always left empty to tell full from empty without a third
// shared counter, so a ring of n slots holds at most n-1 elements.
//
// Memory: O(capacity), allocated once by [New]
type Ring[T any] struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []T
	size       uint64
}

// New creates a ring with capacity slots.
//
// Capacity is the number of slots, not a power of 2 requirement. Usable
// capacity is capacity-1. Returns ErrInvalidCapacity if capacity < 2.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 {
		return nil, ErrInvalidCapacity
	}

	return &Ring[T]{
		buffer: make([]T, capacity),
		size:   uint64(capacity),
	}, nil
}

// MustNew is like [New] but panics if capacity < 2.
func MustNew[T any](capacity int) *Ring[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// Push adds an element to the ring (producer only).
// Returns Full without side effects if no slot is free.
func (r *Ring[T]) Push(elem T) Status {
	// Only the producer stores tail, so its own last write needs no ordering.
	tail := r.tail.LoadRelaxed()
	next := r.next(tail)
	if next == r.cachedHead {
		// Pairs with the consumer's StoreRelease of head: slots it freed
		// are ours to overwrite once the new head is observed.
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return Full
		}
	}

	// Slot tail is invisible to the consumer until tail is published.
	r.buffer[tail] = elem
	r.tail.StoreRelease(next)
	return Success
}

// Pop removes and returns the oldest element (consumer only).
// Returns (zero-value, Empty) if nothing has been published.
func (r *Ring[T]) Pop() (T, Status) {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			var zero T
			return zero, Empty
		}
	}

	elem := r.buffer[head]
	var zero T
	r.buffer[head] = zero
	r.head.StoreRelease(r.next(head))
	return elem, Success
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrFull if the ring is full.
func (r *Ring[T]) Enqueue(elem *T) error {
	return r.Push(*elem).Err()
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrEmpty) if the ring is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	elem, st := r.Pop()
	return elem, st.Err()
}

// Drain pops every published element, passing each to fn (consumer only).
// A nil fn discards the elements. Returns the number of elements removed.
//
// Drain is the teardown path for elements that own resources: the ring
// itself never closes or releases what it holds.
func (r *Ring[T]) Drain(fn func(T)) int {
	n := 0
	for {
		elem, st := r.Pop()
		if st != Success {
			return n
		}
		if fn != nil {
			fn(elem)
		}
		n++
	}
}

// Len returns the number of elements in the ring.
//
// Exact when called from the producer or the consumer while the other side
// is idle. Under concurrent use it is a snapshot that may be stale by the
// time it returns.
func (r *Ring[T]) Len() int {
	head := r.head.LoadAcquire()
	tail := r.tail.LoadAcquire()
	if tail >= head {
		return int(tail - head)
	}
	return int(r.size - head + tail)
}

// Empty reports whether the ring holds no elements. See [Ring.Len].
func (r *Ring[T]) Empty() bool {
	return r.head.LoadAcquire() == r.tail.LoadAcquire()
}

// Cap returns the number of elements the ring can hold, one less than
// the number of slots.
func (r *Ring[T]) Cap() int {
	return int(r.size - 1)
}

// next returns the slot after pos, wrapping to 0 at the end of the buffer.
func (r *Ring[T]) next(pos uint64) uint64 {
	if pos+1 == r.size {
		return 0
	}
	return pos + 1
}
