// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/spsc"
)

// ExampleNew demonstrates a ring used from a single goroutine.
func ExampleNew() {
	r, err := spsc.New[int](4)
	if err != nil {
		panic(err)
	}

	// Three of the four slots are usable
	for i := 1; i <= 4; i++ {
		fmt.Println("push", i*10, r.Push(i*10))
	}

	for range 4 {
		v, st := r.Pop()
		fmt.Println("pop", v, st)
	}

	// Output:
	// push 10 success
	// push 20 success
	// push 30 success
	// push 40 full
	// pop 10 success
	// pop 20 success
	// pop 30 success
	// pop 0 empty
}

// ExampleNew_invalidCapacity shows the only failure a ring reports.
func ExampleNew_invalidCapacity() {
	_, err := spsc.New[int](1)
	fmt.Println(errors.Is(err, spsc.ErrInvalidCapacity))

	// Output:
	// true
}

// ExampleRing_Enqueue shows the error-returning adapters.
func ExampleRing_Enqueue() {
	r := spsc.MustNew[string](2)

	a, b := "a", "b"
	fmt.Println(r.Enqueue(&a))
	err := r.Enqueue(&b)
	fmt.Println(errors.Is(err, spsc.ErrFull), spsc.IsWouldBlock(err))

	// Output:
	// <nil>
	// true true
}

// ExampleRing_Drain shows releasing what is left in a ring at teardown.
func ExampleRing_Drain() {
	type conn struct{ id int }
	r := spsc.MustNew[*conn](8)
	for i := range 3 {
		r.Push(&conn{id: i})
	}

	n := r.Drain(func(c *conn) {
		fmt.Println("close", c.id)
	})
	fmt.Println("drained", n)

	// Output:
	// close 0
	// close 1
	// close 2
	// drained 3
}
