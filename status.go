// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Status is the outcome of [Ring.Push] or [Ring.Pop].
//
// Full and Empty are steady-state backpressure signals, not faults. The
// ring never retries on the caller's behalf: spin, yield, back off or drop
// as the caller sees fit.
type Status uint8

const (
	// Success means the element was stored (Push) or returned (Pop).
	Success Status = iota
	// Full means Push found no free slot. The ring is unchanged.
	Full
	// Empty means Pop found no published element. The ring is unchanged.
	Empty
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Full:
		return "full"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Err converts s to an error: nil for Success, [ErrFull] for Full and
// [ErrEmpty] for Empty.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case Full:
		return ErrFull
	default:
		return ErrEmpty
	}
}
