// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench drives a spsc.Ring with one producer and one consumer
// goroutine and times repeated trials.
//
// Each trial builds a fresh ring, pushes the integers 1..Ops from the
// producer, sums every value popped by the consumer and checks the sum
// against Ops*(Ops+1)/2. The ring is dropped when the trial ends.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/spsc"
	"code.hybscloud.com/spsc/internal/affinity"
	"code.hybscloud.com/spsc/internal/stopwatch"
)

// ErrChecksum is returned when the consumer's sum differs from the sum of
// the pushed sequence, meaning a value was lost or duplicated.
var ErrChecksum = errors.New("bench: checksum mismatch")

// Trial is the outcome of one producer/consumer run.
type Trial struct {
	Sum      int64
	Duration time.Duration
}

// Want returns the sum of 1..ops.
func Want(ops int64) int64 {
	return ops * (ops + 1) / 2
}

// RunTrial runs one trial. ctx is checked only while a side is waiting on
// Full or Empty, so a stalled trial can be cancelled without adding work to
// the hot path.
//
// Pinning errors fail the trial, except affinity.ErrUnsupported, which is
// passed to onUnpinned (if non-nil) and otherwise ignored.
func RunTrial(ctx context.Context, cfg Config, onUnpinned func(error)) (Trial, error) {
	ring, err := spsc.New[int64](cfg.Capacity)
	if err != nil {
		return Trial{}, err
	}

	pin := func(cpu int) error {
		err := affinity.Pin(cpu)
		if errors.Is(err, affinity.ErrUnsupported) {
			if onUnpinned != nil {
				onUnpinned(err)
			}
			return nil
		}
		return err
	}

	var sum int64
	g, ctx := errgroup.WithContext(ctx)
	begin := time.Now()

	g.Go(func() error {
		if err := pin(cfg.ProducerCPU); err != nil {
			return fmt.Errorf("producer: %w", err)
		}
		w := cfg.Wait.newWaiter()
		for i := int64(1); i <= cfg.Ops; i++ {
			for ring.Push(i) == spsc.Full {
				w.Wait()
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("producer: %w", err)
				}
			}
			w.Reset()
		}
		return nil
	})

	g.Go(func() error {
		if err := pin(cfg.ConsumerCPU); err != nil {
			return fmt.Errorf("consumer: %w", err)
		}
		w := cfg.Wait.newWaiter()
		var local int64
		for range cfg.Ops {
			v, st := ring.Pop()
			for st == spsc.Empty {
				w.Wait()
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("consumer: %w", err)
				}
				v, st = ring.Pop()
			}
			w.Reset()
			local += v
		}
		sum = local
		return nil
	})

	if err := g.Wait(); err != nil {
		return Trial{}, err
	}
	t := Trial{Sum: sum, Duration: time.Since(begin)}
	if want := Want(cfg.Ops); t.Sum != want {
		return t, fmt.Errorf("%w: got %d, want %d", ErrChecksum, t.Sum, want)
	}
	return t, nil
}

// Runner times Config.Trials independent trials.
type Runner struct {
	Config Config
	// Logger receives per-trial debug records and warnings.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// Run validates the configuration, runs every trial and summarizes the
// per-trial wall-clock durations. It stops at the first failed trial.
func (r *Runner) Run(ctx context.Context) (stopwatch.Summary, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return stopwatch.Summary{}, err
	}
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	timer, err := stopwatch.New(cfg.Trials)
	if err != nil {
		return stopwatch.Summary{}, err
	}

	var warnOnce sync.Once
	onUnpinned := func(err error) {
		warnOnce.Do(func() {
			log.Warn("cpu pinning unavailable, running unpinned", "err", err)
		})
	}

	log.Info("benchmark start",
		"capacity", cfg.Capacity,
		"ops", cfg.Ops,
		"trials", cfg.Trials,
		"wait", cfg.Wait,
		"producer_cpu", cfg.ProducerCPU,
		"consumer_cpu", cfg.ConsumerCPU,
	)

	trial := 0
	err = timer.Measure(func() error {
		t, err := RunTrial(ctx, cfg, onUnpinned)
		if err != nil {
			return err
		}
		log.Debug("trial done", "trial", trial, "duration", t.Duration, "sum", t.Sum)
		trial++
		return nil
	})
	if err != nil {
		return stopwatch.Summary{}, err
	}
	return timer.Summary()
}
