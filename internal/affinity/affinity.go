// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins goroutines to logical CPUs.
//
// Pinning locks the calling goroutine to its OS thread and restricts that
// thread to one CPU. The goroutine stays locked: when it exits, the runtime
// terminates the thread instead of handing a pinned thread to other
// goroutines.
package affinity

import (
	"errors"
	"fmt"
)

// None means "do not pin".
const None = -1

var (
	// ErrInvalidCPU is returned for a CPU outside the process's allowed set.
	ErrInvalidCPU = errors.New("affinity: invalid cpu")

	// ErrUnsupported is returned where thread affinity is not available.
	ErrUnsupported = fmt.Errorf("affinity: %w", errors.ErrUnsupported)
)
