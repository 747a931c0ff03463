// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command spscbench measures spsc.Ring throughput with one producer and one
// consumer goroutine.
//
// Usage:
//
//	go run ./cmd/spscbench -trials 100 -ops 10000000 -capacity 4096
//	go run ./cmd/spscbench -producer-cpu 2 -consumer-cpu 4 -wait spin -unit us
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"code.hybscloud.com/spsc/internal/bench"
	"code.hybscloud.com/spsc/internal/stopwatch"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "spscbench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	def := bench.DefaultConfig()
	fs := flag.NewFlagSet("spscbench", flag.ContinueOnError)
	capacity := fs.Int("capacity", def.Capacity, "ring slots (usable capacity is one less)")
	ops := fs.Int64("ops", def.Ops, "values pushed per trial")
	trials := fs.Int("trials", def.Trials, "number of timed trials")
	producerCPU := fs.Int("producer-cpu", def.ProducerCPU, "pin the producer to this CPU (-1: no pinning)")
	consumerCPU := fs.Int("consumer-cpu", def.ConsumerCPU, "pin the consumer to this CPU (-1: no pinning)")
	wait := fs.String("wait", def.Wait.String(), "reaction to full/empty: yield, spin or backoff")
	unit := fs.String("unit", "ms", "report unit: ns, us, ms or s")
	verbose := fs.Bool("v", false, "log every trial")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := bench.ParseWait(*wait)
	if err != nil {
		return err
	}
	u, err := stopwatch.ParseUnit(*unit)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &bench.Runner{
		Config: bench.Config{
			Capacity:    *capacity,
			Ops:         *ops,
			Trials:      *trials,
			ProducerCPU: *producerCPU,
			ConsumerCPU: *consumerCPU,
			Wait:        w,
		},
		Logger: logger,
	}
	summary, err := r.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("benchmark done",
		"trials", summary.Trials,
		"min", summary.Min,
		"max", summary.Max,
	)
	return summary.Report(os.Stdout, u)
}
