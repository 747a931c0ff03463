// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !spsc_cacheline32 && !spsc_cacheline64 && !spsc_cacheline128 && !spsc_cacheline256

package spsc

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding in bytes between the ring's position words.
//
// Defaults to the target architecture's cache line as reported by
// golang.org/x/sys/cpu, and never less than 64. Override at build time with
// one of the tags spsc_cacheline32, spsc_cacheline64, spsc_cacheline128 or
// spsc_cacheline256.
const CacheLineSize = max(int(unsafe.Sizeof(cpu.CacheLinePad{})), 64)
