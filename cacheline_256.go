// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build spsc_cacheline256

package spsc

// CacheLineSize is the padding in bytes between the ring's position words,
// fixed by the spsc_cacheline256 build tag.
const CacheLineSize = 256
