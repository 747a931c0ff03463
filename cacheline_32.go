// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build spsc_cacheline32

package spsc

// CacheLineSize is the padding in bytes between the ring's position words,
// fixed by the spsc_cacheline32 build tag.
const CacheLineSize = 32
