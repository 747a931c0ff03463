// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stopwatch_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/spsc/internal/stopwatch"
)

func TestNewRejectsZeroTrials(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := stopwatch.New(n); !errors.Is(err, stopwatch.ErrNoTrials) {
			t.Fatalf("New(%d): got %v, want ErrNoTrials", n, err)
		}
	}
}

func TestMeasureRunsEveryTrial(t *testing.T) {
	tm, err := stopwatch.New(5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	calls := 0
	if err := tm.Measure(func() error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if calls != 5 {
		t.Fatalf("calls: got %d, want 5", calls)
	}
	if n := len(tm.Samples()); n != 5 {
		t.Fatalf("samples: got %d, want 5", n)
	}
	for i, d := range tm.Samples() {
		if d < 0 {
			t.Fatalf("sample %d: got %v, want >= 0", i, d)
		}
	}
}

func TestMeasureStopsOnError(t *testing.T) {
	tm, err := stopwatch.New(10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	boom := errors.New("boom")
	calls := 0
	err = tm.Measure(func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Measure: got %v, want boom", err)
	}
	if calls != 3 {
		t.Fatalf("calls: got %d, want 3", calls)
	}
	if n := len(tm.Samples()); n != 2 {
		t.Fatalf("samples: got %d, want 2", n)
	}
}

func TestSummarize(t *testing.T) {
	samples := []time.Duration{
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		5 * time.Millisecond,
		5 * time.Millisecond,
		7 * time.Millisecond,
		9 * time.Millisecond,
	}

	s, err := stopwatch.Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Trials != 8 {
		t.Fatalf("Trials: got %d, want 8", s.Trials)
	}
	if s.Mean != 5*time.Millisecond {
		t.Fatalf("Mean: got %v, want 5ms", s.Mean)
	}
	if s.StdDev != 2*time.Millisecond {
		t.Fatalf("StdDev: got %v, want 2ms", s.StdDev)
	}
	if s.Median != 4500*time.Microsecond {
		t.Fatalf("Median: got %v, want 4.5ms", s.Median)
	}
	if s.Min != 2*time.Millisecond || s.Max != 9*time.Millisecond {
		t.Fatalf("Min/Max: got %v/%v, want 2ms/9ms", s.Min, s.Max)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := stopwatch.Summarize(nil); !errors.Is(err, stopwatch.ErrNoTrials) {
		t.Fatalf("Summarize(nil): got %v, want ErrNoTrials", err)
	}
}

func TestReport(t *testing.T) {
	s := stopwatch.Summary{
		Trials: 3,
		Median: 412 * time.Millisecond,
		Mean:   415370 * time.Microsecond,
		StdDev: 9810 * time.Microsecond,
	}

	var buf bytes.Buffer
	if err := s.Report(&buf, time.Millisecond); err != nil {
		t.Fatalf("Report: %v", err)
	}
	want := "Median: 412 ms\nMean: 415.37 ms\nStandard Deviation: 9.81 ms\n"
	if got := buf.String(); got != want {
		t.Fatalf("Report:\ngot  %q\nwant %q", got, want)
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
		name string
	}{
		{"ns", time.Nanosecond, "ns"},
		{"us", time.Microsecond, "µs"},
		{"µs", time.Microsecond, "µs"},
		{"ms", time.Millisecond, "ms"},
		{"s", time.Second, "s"},
	}
	for _, tc := range cases {
		got, err := stopwatch.ParseUnit(tc.in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseUnit(%q): got %v, want %v", tc.in, got, tc.want)
		}
		if name := stopwatch.UnitName(got); name != tc.name {
			t.Fatalf("UnitName(%v): got %q, want %q", got, name, tc.name)
		}
	}

	if _, err := stopwatch.ParseUnit("fortnight"); err == nil {
		t.Fatal("ParseUnit(fortnight): got nil error")
	}
}
