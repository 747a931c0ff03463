// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"code.hybscloud.com/spsc"
	"code.hybscloud.com/spsc/internal/bench"
)

func TestRunSmall(t *testing.T) {
	if spsc.RaceEnabled {
		t.Skip("skip: ring uses cross-variable memory ordering not understood by race detector")
	}
	if err := run([]string{"-trials", "2", "-ops", "10000", "-capacity", "16", "-unit", "us"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunBadFlags(t *testing.T) {
	cases := [][]string{
		{"-wait", "sleep"},
		{"-unit", "fortnight"},
		{"-capacity", "1"},
		{"-nope"},
	}
	for _, args := range cases {
		if err := run(args); err == nil {
			t.Fatalf("run(%v): got nil error", args)
		}
	}
	if err := run([]string{"-trials", "0"}); !errors.Is(err, bench.ErrInvalidConfig) {
		t.Fatalf("run(-trials 0): got %v, want ErrInvalidConfig", err)
	}
}
