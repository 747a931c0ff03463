// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// pad is cache line padding to prevent false sharing between the
// producer-owned and consumer-owned fields of a ring.
type pad [CacheLineSize]byte
