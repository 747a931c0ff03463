// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"

	"code.hybscloud.com/spsc/internal/affinity"
)

// Defaults match the reference workload: 1000 trials of 10M values through
// a 4096-slot ring.
const (
	DefaultCapacity = 4096
	DefaultOps      = 10_000_000
	DefaultTrials   = 1000
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	// Capacity is the number of ring slots.
	Capacity int
	// Ops is the number of values pushed and popped per trial.
	Ops int64
	// Trials is the number of independent timed trials.
	Trials int
	// ProducerCPU and ConsumerCPU pin each side to a logical CPU,
	// or affinity.None.
	ProducerCPU int
	ConsumerCPU int
	// Wait is what each side does after Full or Empty.
	Wait Wait
}

// DefaultConfig returns the reference workload, unpinned, yielding on
// Full and Empty.
func DefaultConfig() Config {
	return Config{
		Capacity:    DefaultCapacity,
		Ops:         DefaultOps,
		Trials:      DefaultTrials,
		ProducerCPU: affinity.None,
		ConsumerCPU: affinity.None,
		Wait:        WaitYield,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 2:
		return fmt.Errorf("%w: capacity %d < 2", ErrInvalidConfig, c.Capacity)
	case c.Ops < 1:
		return fmt.Errorf("%w: ops %d < 1", ErrInvalidConfig, c.Ops)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d < 1", ErrInvalidConfig, c.Trials)
	case c.ProducerCPU < affinity.None:
		return fmt.Errorf("%w: producer cpu %d", ErrInvalidConfig, c.ProducerCPU)
	case c.ConsumerCPU < affinity.None:
		return fmt.Errorf("%w: consumer cpu %d", ErrInvalidConfig, c.ConsumerCPU)
	case c.Wait > WaitBackoff:
		return fmt.Errorf("%w: wait strategy %d", ErrInvalidConfig, c.Wait)
	}
	return nil
}
