// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stopwatch times repeated independent trials and summarizes
// their wall-clock durations.
package stopwatch

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/montanaflynn/stats"
)

// ErrNoTrials is returned when a timer is asked for fewer than one trial,
// or summarized before any trial was recorded.
var ErrNoTrials = errors.New("stopwatch: trials must be >= 1")

// Timer runs a function a fixed number of times and records how long
// each run took.
type Timer struct {
	trials  int
	samples []time.Duration
}

// New creates a timer for the given number of trials.
func New(trials int) (*Timer, error) {
	if trials < 1 {
		return nil, ErrNoTrials
	}
	return &Timer{
		trials:  trials,
		samples: make([]time.Duration, 0, trials),
	}, nil
}

// Measure calls fn once per trial, timing each call on the monotonic clock.
// It stops at the first error, which is returned with the trial index.
// Durations of completed trials are kept.
func (t *Timer) Measure(fn func() error) error {
	for i := range t.trials {
		begin := time.Now()
		err := fn()
		elapsed := time.Since(begin)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		t.samples = append(t.samples, elapsed)
	}
	return nil
}

// Samples returns a copy of the recorded durations in trial order.
func (t *Timer) Samples() []time.Duration {
	return slices.Clone(t.samples)
}

// Summary returns statistics over the recorded durations.
func (t *Timer) Summary() (Summary, error) {
	return Summarize(t.samples)
}

// Summary describes a set of trial durations.
type Summary struct {
	Trials int
	Min    time.Duration
	Max    time.Duration
	Median time.Duration
	Mean   time.Duration
	// StdDev is the population standard deviation.
	StdDev time.Duration
}

// Summarize computes a Summary over samples.
func Summarize(samples []time.Duration) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoTrials
	}

	data := make(stats.Float64Data, len(samples))
	for i, d := range samples {
		data[i] = float64(d)
	}

	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("stopwatch: median: %w", err)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("stopwatch: mean: %w", err)
	}
	stddev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("stopwatch: standard deviation: %w", err)
	}

	return Summary{
		Trials: len(samples),
		Min:    slices.Min(samples),
		Max:    slices.Max(samples),
		Median: time.Duration(median),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(stddev),
	}, nil
}

// Report writes the median, mean and standard deviation expressed in unit.
//
//	Median: 412 ms
//	Mean: 415.37 ms
//	Standard Deviation: 9.81 ms
//
// A non-positive unit reports in milliseconds.
func (s Summary) Report(w io.Writer, unit time.Duration) error {
	if unit <= 0 {
		unit = time.Millisecond
	}
	name := UnitName(unit)
	_, err := fmt.Fprintf(w,
		"Median: %d %s\nMean: %.2f %s\nStandard Deviation: %.2f %s\n",
		int64(s.Median/unit), name,
		float64(s.Mean)/float64(unit), name,
		float64(s.StdDev)/float64(unit), name,
	)
	return err
}
