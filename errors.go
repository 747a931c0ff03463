// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrInvalidCapacity is returned by [New] when the requested capacity
// leaves no usable slot. It is the only failure the ring reports.
var ErrInvalidCapacity = errors.New("spsc: capacity must be >= 2")

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by [Ring.Enqueue] when the ring is full.
// It wraps [ErrWouldBlock].
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := r.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if spsc.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrFull = fmt.Errorf("spsc: ring full: %w", ErrWouldBlock)

// ErrEmpty is returned by [Ring.Dequeue] when the ring is empty.
// It wraps [ErrWouldBlock].
var ErrEmpty = fmt.Errorf("spsc: ring empty: %w", ErrWouldBlock)

// IsWouldBlock reports whether err indicates the operation would block.
// True for [ErrFull] and [ErrEmpty]. Delegates to [iox.IsWouldBlock].
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
