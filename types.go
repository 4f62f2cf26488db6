// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

// Queue is the combined producer-consumer interface shared by [Ring] and
// [MutexQueue].
//
// The interface intentionally excludes an exact, always-current length:
// Len is an approximation under concurrent access for both
// implementations (accurate counts in a lock-free algorithm require
// expensive cross-core synchronization).
//
// Example:
//
//	var q queue.Queue[int] = queue.NewRing[int](1024)
//
//	v := 42
//	if !q.TryEnqueueCopy(v) {
//	    // queue full
//	}
//
//	var out int
//	if q.TryDequeue(&out) {
//	    fmt.Println(out)
//	}
type Queue[T any] interface {
	// TryEnqueueCopy copies item into the queue.
	// Returns true on success, false if the queue is full.
	TryEnqueueCopy(item T) bool

	// TryEnqueueMove transfers ownership of *item into the queue.
	// On success, *item is reset to its zero value. On failure
	// (queue full), *item is left unchanged.
	TryEnqueueMove(item *T) bool

	// TryDequeue moves one element from the queue into *out.
	// Returns true on success, false if the queue is empty.
	TryDequeue(out *T) bool

	// TryEnqueueErr is [Queue.TryEnqueueCopy] reported as an error:
	// nil on success, [ErrFull] if the queue is full.
	TryEnqueueErr(item T) error

	// TryDequeueErr is [Queue.TryDequeue] reported as an error: nil on
	// success, [ErrEmpty] if the queue is empty.
	TryDequeueErr(out *T) error

	// IsEmpty reports whether the queue held no items at the moment
	// of the call.
	IsEmpty() bool

	// Len returns the approximate number of items currently held.
	Len() int

	// Cap returns the queue's fixed capacity.
	Cap() int

	// Close drains any remaining items, invoking drain once per item in
	// dequeue order. No Enqueue/Dequeue call may race with Close.
	Close(drain func(T))
}
