// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to its OS thread and restricts the thread
// to cpu. Pin(None) does nothing.
//
// On failure the goroutine is unlocked again and left unpinned.
func Pin(cpu int) error {
	if cpu == None {
		return nil
	}
	allowed, err := Allowed()
	if err != nil {
		return err
	}
	if !slices.Contains(allowed, cpu) {
		return fmt.Errorf("%w: %d not in %v", ErrInvalidCPU, cpu, allowed)
	}

	runtime.LockOSThread()
	var set unix.CPUSet
	set.Set(cpu)
	// pid 0 is the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("affinity: pin cpu %d: %w", cpu, err)
	}
	return nil
}

// Allowed returns the CPUs the calling thread may run on, in ascending order.
func Allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: get mask: %w", err)
	}
	cpus := make([]int, 0, set.Count())
	for cpu := 0; len(cpus) < set.Count(); cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}
