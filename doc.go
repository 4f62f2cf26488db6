// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides a bounded, lock-free multi-producer
// multi-consumer FIFO queue, plus a two-lock reference implementation
// sharing the same contract.
//
// # Quick Start
//
//	q := queue.NewRing[Event](1024) // capacity rounds up to a power of 2
//
//	// Enqueue (non-blocking)
//	ev := Event{ID: 1}
//	if !q.TryEnqueueCopy(ev) {
//	    // queue full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	var out Event
//	if q.TryDequeue(&out) {
//	    process(out)
//	}
//
// Builder API selects between the lock-free ring and the two-lock
// reference queue:
//
//	q := queue.Build[Event](queue.New(1024))             // lock-free Ring
//	ref := queue.Build[Event](queue.New(1024).Reference()) // MutexQueue
//
// # Algorithm
//
// Ring uses per-slot sequence numbers with a CAS claim/publish handshake:
// a producer claims the tail cursor's slot, writes the payload, then
// release-stores the slot's sequence to publish it; a consumer observes
// the published sequence, claims the head cursor's slot, moves the
// payload out, then release-stores the re-armed sequence for the next
// lap. Both cursors and every slot sequence are acquire/release atomics;
// cursor CAS itself may be relaxed because the slot sequence carries the
// synchronization.
//
// Ring is lock-free, not wait-free: on every CAS generation some
// contending goroutine completes, but an individual unlucky goroutine
// can be delayed by a pathological scheduler. Neither Enqueue nor
// Dequeue ever blocks; both return false immediately on a full/empty
// observation. Callers that want to wait implement their own
// yield/sleep/backoff policy around the Try* calls.
//
// # Capacity
//
// Capacity rounds up to the next power of two:
//
//	q := queue.NewRing[int](3)    // actual capacity: 4
//	q := queue.NewRing[int](1000) // actual capacity: 1024
//
// Minimum capacity is 2. Panics if capacity < 2.
//
// Len and IsEmpty are approximations under concurrent access: they
// become exact only once producers and consumers are quiescent. The
// queue never allocates after construction, tracks no length counter
// (doing so would require expensive cross-core synchronization), and
// owns no OS resources.
//
// # Thread Safety
//
// Any number of goroutines may call TryEnqueueCopy, TryEnqueueMove, and
// TryDequeue concurrently on the same queue, on either implementation.
//
// # Destruction
//
// Go has no destructors, so draining on teardown is explicit: Close
// repeatedly dequeues until empty, invoking a caller-supplied function
// once per live item, so that a type needing cleanup (e.g. closing a
// connection held by the payload) gets exactly one callback per item.
// No Enqueue/Dequeue call may race with Close.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe happens-before relationships established purely
// through atomic memory ordering. Ring's CAS-based algorithm is
// correct, but the race detector can report false positives on its
// cross-variable acquire/release synchronization. Tests incompatible
// with race detection are gated by [RaceEnabled].
package queue
