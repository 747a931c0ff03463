// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spsc

// RaceEnabled is true when the race detector is active.
//
// The detector cannot see the happens-before edge a ring creates between a
// slot write and the release store of tail, so concurrent ring tests and
// examples skip themselves when it is set.
const RaceEnabled = true
