// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Ring is a lock-free, bounded multi-producer multi-consumer FIFO queue.
//
// Uses per-slot sequence numbers for ABA safety: a slot cycles through a
// unique (lap, role) value every time it is reused, so a producer or
// consumer resuming after a long delay cannot mistakenly match a stale
// generation. Capacity is fixed at construction and never grows; no
// allocation occurs after [NewRing] returns.
//
// Ring must not be copied after first use: it holds padding-sensitive
// atomic cursors whose addresses matter for false-sharing avoidance.
type Ring[T any] struct {
	_        pad
	tail     atomix.Uint64 // write cursor
	_        pad
	head     atomix.Uint64 // read cursor
	_        pad
	buffer   []ringSlot[T]
	mask     uint64
	capacity uint64
}

type ringSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort
}

// NewRing creates a bounded lock-free MPMC queue.
// capacity rounds up to the next power of two; panics if capacity < 2.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	q := &Ring[T]{
		buffer:   make([]ringSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// TryEnqueueCopy copies item into the queue.
// Returns true on success, false if the queue is full (item is unused).
func (q *Ring[T]) TryEnqueueCopy(item T) bool {
	return q.tryEnqueue(&item)
}

// TryEnqueueMove transfers ownership of *item into the queue.
// On success, *item is reset to its zero value and true is returned.
// On failure (queue full), *item is left unchanged and false is returned.
func (q *Ring[T]) TryEnqueueMove(item *T) bool {
	if q.tryEnqueue(item) {
		var zero T
		*item = zero
		return true
	}
	return false
}

func (q *Ring[T]) tryEnqueue(item *T) bool {
	sw := spin.Wait{}
	pos := q.tail.LoadRelaxed()
	for {
		slot := &q.buffer[pos&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(pos)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapRelaxed(pos, pos+1) {
				slot.data = *item
				slot.seq.StoreRelease(pos + 1)
				return true
			}
			pos = q.tail.LoadRelaxed()
		case diff < 0:
			head := q.head.LoadAcquire()
			if pos-head >= q.capacity {
				return false
			}
			pos = q.tail.LoadRelaxed()
		default:
			pos = q.tail.LoadRelaxed()
		}
		sw.Once()
	}
}

// TryDequeue moves one element from the queue into *out.
// Returns true on success. Returns false if the queue is empty, leaving
// *out untouched.
func (q *Ring[T]) TryDequeue(out *T) bool {
	sw := spin.Wait{}
	pos := q.head.LoadRelaxed()
	for {
		slot := &q.buffer[pos&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(pos+1)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapRelaxed(pos, pos+1) {
				*out = slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(pos + q.capacity)
				return true
			}
			pos = q.head.LoadRelaxed()
		case diff < 0:
			tail := q.tail.LoadAcquire()
			if pos >= tail {
				return false
			}
			pos = q.head.LoadRelaxed()
		default:
			pos = q.head.LoadRelaxed()
		}
		sw.Once()
	}
}

// TryEnqueueErr copies item into the queue like [Ring.TryEnqueueCopy] but
// reports failure as an error, returning [ErrFull] instead of false so
// callers can classify it with [IsFull].
func (q *Ring[T]) TryEnqueueErr(item T) error {
	if q.TryEnqueueCopy(item) {
		return nil
	}
	return ErrFull
}

// TryDequeueErr moves one element into *out like [Ring.TryDequeue] but
// reports failure as an error, returning [ErrEmpty] instead of false so
// callers can classify it with [IsEmpty].
func (q *Ring[T]) TryDequeueErr(out *T) error {
	if q.TryDequeue(out) {
		return nil
	}
	return ErrEmpty
}

// IsEmpty reports whether the queue held no items at the moment of the
// call. Under concurrent access this is an approximation: it becomes
// exact only once producers and consumers are quiescent.
func (q *Ring[T]) IsEmpty() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return tail <= head
}

// Len returns the number of items in the queue at the moment of the
// call. Like [Ring.IsEmpty], this is an approximation under concurrent
// access and never underflows below zero.
func (q *Ring[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the queue's fixed capacity.
func (q *Ring[T]) Cap() int {
	return int(q.capacity)
}

// Close drains any remaining items, invoking drain once per item in
// dequeue order. No Enqueue/Dequeue call may race with Close.
func (q *Ring[T]) Close(drain func(T)) {
	var item T
	for q.TryDequeue(&item) {
		if drain != nil {
			drain(item)
		}
	}
}
