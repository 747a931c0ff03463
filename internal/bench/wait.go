// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"runtime"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Wait selects how a side reacts to Full or Empty before retrying.
type Wait uint8

const (
	// WaitYield calls runtime.Gosched.
	WaitYield Wait = iota
	// WaitSpin executes CPU pause instructions via spin.Wait.
	WaitSpin
	// WaitBackoff uses iox.Backoff's adaptive sleep.
	WaitBackoff
)

func (w Wait) String() string {
	switch w {
	case WaitYield:
		return "yield"
	case WaitSpin:
		return "spin"
	case WaitBackoff:
		return "backoff"
	default:
		return fmt.Sprintf("Wait(%d)", uint8(w))
	}
}

// ParseWait parses "yield", "spin" or "backoff".
func ParseWait(s string) (Wait, error) {
	switch s {
	case "yield":
		return WaitYield, nil
	case "spin":
		return WaitSpin, nil
	case "backoff":
		return WaitBackoff, nil
	}
	return 0, fmt.Errorf("%w: unknown wait strategy %q", ErrInvalidConfig, s)
}

// waiter is the caller-side retry policy of one ring side.
// Wait is called after a miss, Reset after a success that followed misses.
type waiter interface {
	Wait()
	Reset()
}

func (w Wait) newWaiter() waiter {
	switch w {
	case WaitSpin:
		return &spinWaiter{}
	case WaitBackoff:
		return &iox.Backoff{}
	default:
		return yieldWaiter{}
	}
}

type yieldWaiter struct{}

func (yieldWaiter) Wait()  { runtime.Gosched() }
func (yieldWaiter) Reset() {}

type spinWaiter struct {
	sw spin.Wait
}

func (w *spinWaiter) Wait()  { w.sw.Once() }
func (w *spinWaiter) Reset() { w.sw.Reset() }
