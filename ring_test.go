// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"testing"

	"github.com/wlsqc123/lockfree-queue"
)

// TestRingBasic exercises S1: single-threaded round trip at capacity 4.
func TestRingBasic(t *testing.T) {
	q := queue.NewRing[int](4)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}
	if !q.IsEmpty() {
		t.Fatal("new queue should be empty")
	}

	for i := 1; i <= 4; i++ {
		if !q.TryEnqueueCopy(i) {
			t.Fatalf("TryEnqueueCopy(%d): want true", i)
		}
	}

	if q.TryEnqueueCopy(5) {
		t.Fatal("TryEnqueueCopy on full queue: want false")
	}
	if q.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", q.Len())
	}

	for i := 1; i <= 4; i++ {
		var out int
		if !q.TryDequeue(&out) {
			t.Fatalf("TryDequeue(%d): want true", i)
		}
		if out != i {
			t.Fatalf("TryDequeue(%d): got %d, want %d", i, out, i)
		}
	}

	var out int
	if q.TryDequeue(&out) {
		t.Fatal("TryDequeue on empty queue: want false")
	}
	if !q.IsEmpty() {
		t.Fatal("drained queue should be empty")
	}
}

// TestRingWraparound exercises S2: the slot re-arm step across laps at
// capacity 2.
func TestRingWraparound(t *testing.T) {
	q := queue.NewRing[int](2)

	if !q.TryEnqueueCopy(10) {
		t.Fatal("enqueue 10: want true")
	}
	var out int
	if !q.TryDequeue(&out) || out != 10 {
		t.Fatalf("dequeue: got %d, want 10", out)
	}
	if !q.TryEnqueueCopy(20) {
		t.Fatal("enqueue 20: want true")
	}
	if !q.TryEnqueueCopy(30) {
		t.Fatal("enqueue 30: want true")
	}
	if !q.TryDequeue(&out) || out != 20 {
		t.Fatalf("dequeue: got %d, want 20", out)
	}
	if !q.TryDequeue(&out) || out != 30 {
		t.Fatalf("dequeue: got %d, want 30", out)
	}
	if q.TryDequeue(&out) {
		t.Fatal("dequeue on empty: want false")
	}
}

// TestRingCapacityRounding verifies capacity rounds up to a power of 2.
func TestRingCapacityRounding(t *testing.T) {
	cases := []struct{ in, want int }{
		{2, 2}, {3, 4}, {4, 4}, {1000, 1024}, {1024, 1024},
	}
	for _, c := range cases {
		q := queue.NewRing[int](c.in)
		if q.Cap() != c.want {
			t.Errorf("NewRing(%d).Cap(): got %d, want %d", c.in, q.Cap(), c.want)
		}
	}
}

// TestRingPanicOnSmallCapacity verifies construction panics for capacity < 2.
func TestRingPanicOnSmallCapacity(t *testing.T) {
	for _, c := range []int{0, 1, -1} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewRing(%d): expected panic", c)
				}
			}()
			queue.NewRing[int](c)
		}()
	}
}

// TestRingManyLaps drives many cycles of fill/drain to exercise the
// sequence counter across repeated laps around the ring.
func TestRingManyLaps(t *testing.T) {
	q := queue.NewRing[int](4)

	for cycle := 0; cycle < 1000; cycle++ {
		for i := 0; i < 4; i++ {
			v := cycle*100 + i
			if !q.TryEnqueueCopy(v) {
				t.Fatalf("cycle %d: TryEnqueueCopy(%d): want true", cycle, i)
			}
		}
		for i := 0; i < 4; i++ {
			var out int
			if !q.TryDequeue(&out) {
				t.Fatalf("cycle %d: TryDequeue(%d): want true", cycle, i)
			}
			want := cycle*100 + i
			if out != want {
				t.Fatalf("cycle %d: got %d, want %d", cycle, out, want)
			}
		}
	}
}

// TestRingMove verifies TryEnqueueMove zeroes the source on success and
// leaves it untouched on failure.
func TestRingMove(t *testing.T) {
	q := queue.NewRing[int](2)

	v := 42
	if !q.TryEnqueueMove(&v) {
		t.Fatal("TryEnqueueMove: want true")
	}
	if v != 0 {
		t.Fatalf("source after successful move: got %d, want 0", v)
	}

	v2 := 7
	if !q.TryEnqueueMove(&v2) {
		t.Fatal("TryEnqueueMove: want true")
	}

	v3 := 99
	if q.TryEnqueueMove(&v3) {
		t.Fatal("TryEnqueueMove on full queue: want false")
	}
	if v3 != 99 {
		t.Fatalf("source after failed move: got %d, want 99 (unchanged)", v3)
	}
}

// TestRingClose verifies Close invokes drain exactly once per live item,
// in dequeue (FIFO) order.
func TestRingClose(t *testing.T) {
	q := queue.NewRing[int](8)
	for i := 0; i < 5; i++ {
		q.TryEnqueueCopy(i)
	}

	var drained []int
	q.Close(func(v int) { drained = append(drained, v) })

	if len(drained) != 5 {
		t.Fatalf("Close: drained %d items, want 5", len(drained))
	}
	for i, v := range drained {
		if v != i {
			t.Fatalf("Close order: index %d got %d, want %d", i, v, i)
		}
	}
	if !q.IsEmpty() {
		t.Fatal("queue should be empty after Close")
	}
}

// TestRingSizeNeverExceedsCapacity is a lightweight check of invariant 2
// over a simple fill sequence.
func TestRingSizeNeverExceedsCapacity(t *testing.T) {
	q := queue.NewRing[int](8)
	for i := 0; i < 20; i++ {
		q.TryEnqueueCopy(i)
		if q.Len() > q.Cap() {
			t.Fatalf("Len %d exceeds Cap %d", q.Len(), q.Cap())
		}
	}
}
