// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// MutexQueue is a bounded multi-producer multi-consumer FIFO queue built
// on two mutexes: one guarding advances of tail (and the paired slot
// write), one guarding advances of head (and the paired slot read).
//
// MutexQueue implements the same [Queue] contract as [Ring] and exists
// to validate the lock-free ring's observable behavior via differential
// testing, and to provide a contention baseline for benchmarking.
//
// MutexQueue must not be copied after first use (it embeds sync.Mutex).
type MutexQueue[T any] struct {
	buffer []T

	_        pad
	tailMu   sync.Mutex
	tail     atomix.Uint64
	_        pad
	headMu   sync.Mutex
	head     atomix.Uint64
	_        pad
	mask     uint64
	capacity uint64
}

// NewMutexQueue creates a bounded two-lock MPMC queue.
// capacity rounds up to the next power of two; panics if capacity < 2.
func NewMutexQueue[T any](capacity int) *MutexQueue[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &MutexQueue[T]{
		buffer:   make([]T, n),
		mask:     n - 1,
		capacity: n,
	}
}

// TryEnqueueCopy copies item into the queue.
// Returns true on success, false if the queue is full.
func (q *MutexQueue[T]) TryEnqueueCopy(item T) bool {
	return q.tryEnqueue(&item)
}

// TryEnqueueMove transfers ownership of *item into the queue.
// On success, *item is reset to its zero value. On failure, *item is
// left unchanged.
func (q *MutexQueue[T]) TryEnqueueMove(item *T) bool {
	if q.tryEnqueue(item) {
		var zero T
		*item = zero
		return true
	}
	return false
}

func (q *MutexQueue[T]) tryEnqueue(item *T) bool {
	q.tailMu.Lock()
	defer q.tailMu.Unlock()

	tail := q.tail.LoadRelaxed()
	head := q.head.LoadAcquire()
	if tail-head >= q.capacity {
		return false
	}

	q.buffer[tail&q.mask] = *item
	q.tail.StoreRelease(tail + 1)
	return true
}

// TryDequeue moves one element from the queue into *out.
// Returns true on success, false if the queue is empty.
func (q *MutexQueue[T]) TryDequeue(out *T) bool {
	q.headMu.Lock()
	defer q.headMu.Unlock()

	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	if head == tail {
		return false
	}

	idx := head & q.mask
	*out = q.buffer[idx]
	var zero T
	q.buffer[idx] = zero
	q.head.StoreRelease(head + 1)
	return true
}

// TryEnqueueErr copies item into the queue like [MutexQueue.TryEnqueueCopy]
// but reports failure as an error, returning [ErrFull] instead of false so
// callers can classify it with [IsFull].
func (q *MutexQueue[T]) TryEnqueueErr(item T) error {
	if q.TryEnqueueCopy(item) {
		return nil
	}
	return ErrFull
}

// TryDequeueErr moves one element into *out like [MutexQueue.TryDequeue]
// but reports failure as an error, returning [ErrEmpty] instead of false so
// callers can classify it with [IsEmpty].
func (q *MutexQueue[T]) TryDequeueErr(out *T) error {
	if q.TryDequeue(out) {
		return nil
	}
	return ErrEmpty
}

// IsEmpty reports whether the queue held no items at the moment of the
// call.
func (q *MutexQueue[T]) IsEmpty() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return head == tail
}

// Len returns the number of items in the queue at the moment of the
// call.
func (q *MutexQueue[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the queue's fixed capacity.
func (q *MutexQueue[T]) Cap() int {
	return int(q.capacity)
}

// Close drains any remaining items, invoking drain once per item in
// dequeue order. No Enqueue/Dequeue call may race with Close.
func (q *MutexQueue[T]) Close(drain func(T)) {
	var item T
	for q.TryDequeue(&item) {
		if drain != nil {
			drain(item)
		}
	}
}
