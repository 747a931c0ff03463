// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides a bounded single-producer single-consumer ring
// buffer that hands values between two goroutines without locks.
//
// # Quick Start
//
//	r, err := spsc.New[Event](4096)
//	if err != nil {
//	    return err // capacity < 2
//	}
//
//	// Producer goroutine
//	for r.Push(ev) == spsc.Full {
//	    runtime.Gosched()
//	}
//
//	// Consumer goroutine
//	ev, st := r.Pop()
//	if st == spsc.Empty {
//	    // nothing published yet - try again later
//	}
//
// # Capacity
//
// New takes the number of slots. One slot is always kept free so that a
// full ring (tail+1 == head) is distinguishable from an empty one
// (tail == head) without a shared element counter:
//
//	r, _ := spsc.New[int](2)     // Cap() == 1
//	r, _ := spsc.New[int](4096)  // Cap() == 4095
//	r, _ := spsc.New[int](1000)  // Cap() == 999, no power of 2 needed
//	_, err := spsc.New[int](1)   // ErrInvalidCapacity
//
// Storage is allocated once. Push and Pop never allocate.
//
// # Status
//
// Push returns Success or Full; Pop returns Success or Empty. Full and Empty
// are backpressure, not failures, and the ring never waits or retries.
// Choose a policy at the call site:
//
//	sw := spin.Wait{}          // CPU pause, for latency-critical pairs
//	backoff := iox.Backoff{}   // adaptive sleep, for bursty traffic
//	runtime.Gosched()          // yield the P to other goroutines
//
// For code that expects error-returning queues, [Ring.Enqueue] and
// [Ring.Dequeue] return [ErrFull] and [ErrEmpty], both wrapping
// [ErrWouldBlock]:
//
//	if err := r.Enqueue(&ev); spsc.IsWouldBlock(err) {
//	    backoff.Wait()
//	}
//
// # Memory Ordering
//
// Each side loads its own index with relaxed ordering, since no other
// goroutine stores it. Publishing uses a release store, and the opposite side
// observes it with an acquire load, which also makes the slot written (or
// vacated) before the store visible. Each side caches the last observed
// opposite index and only reloads it when the cached value says the ring is
// full (producer) or empty (consumer).
//
// head, tail and the two cached copies sit on separate cache lines of
// [CacheLineSize] bytes so the producer and the consumer never write to the
// same line. CacheLineSize follows golang.org/x/sys/cpu for the target
// architecture (at least 64) and can be fixed with a build tag:
//
//	go build -tags spsc_cacheline128 ./...
//
// # Thread Safety
//
// Exactly one goroutine may call Push and Enqueue, and exactly one goroutine
// may call Pop, Dequeue and Drain. The two may be the same goroutine. Nothing
// detects a violation: a second producer or consumer is a data race.
//
// Len, Empty and Cap may be called from anywhere; under concurrent use Len
// is only a snapshot.
//
// # Race Detection
//
// Go's race detector does not observe the happens-before relationship the
// acquire-release pair on tail establishes for the non-atomic slot write.
// Concurrent tests are skipped when [RaceEnabled] is set.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/iox] for semantic errors
// and [golang.org/x/sys/cpu] for the cache line size.
package spsc
