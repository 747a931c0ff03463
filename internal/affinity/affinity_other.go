// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

import "runtime"

// Pin reports ErrUnsupported for any cpu other than None.
func Pin(cpu int) error {
	if cpu == None {
		return nil
	}
	if cpu < 0 || cpu >= runtime.NumCPU() {
		return ErrInvalidCPU
	}
	return ErrUnsupported
}

// Allowed returns 0 through runtime.NumCPU()-1.
func Allowed() ([]int, error) {
	cpus := make([]int, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = i
	}
	return cpus, nil
}
