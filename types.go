// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Queue is the combined producer-consumer interface of a [Ring].
//
// It lets code written against error-returning queues (would-block as
// [ErrWouldBlock]) accept a ring. Code that owns the ring directly should
// prefer [Ring.Push] and [Ring.Pop], which report a [Status] instead.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The ring
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element (non-blocking, single producer only).
	// Returns nil on success, ErrFull if the ring is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value and its slot is cleared so the ring does
// not keep referenced objects alive.
type Consumer[T any] interface {
	// Dequeue removes and returns an element (non-blocking, single
	// consumer only). Returns (zero-value, ErrEmpty) if the ring is empty.
	Dequeue() (T, error)
}

var _ Queue[int] = (*Ring[int])(nil)
