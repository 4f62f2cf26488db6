// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

// Builder creates queues with fluent configuration.
//
// Builder selects between the lock-free ring and the two-lock reference
// queue; both implement [Queue] with identical observable behavior.
//
// Example:
//
//	// Lock-free ring, the default.
//	q := queue.Build[Event](queue.New(1024))
//
//	// Two-lock reference queue, for differential testing or as a
//	// contention baseline.
//	ref := queue.Build[Event](queue.New(1024).Reference())
type Builder struct {
	capacity  int
	reference bool
}

// New creates a queue builder with the given capacity.
// Capacity rounds up to the next power of two. Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	return &Builder{capacity: capacity}
}

// Reference selects the two-lock reference queue ([MutexQueue]) instead
// of the lock-free ring ([Ring]).
func (b *Builder) Reference() *Builder {
	b.reference = true
	return b
}

// Build creates a Queue[T] according to the builder's configuration.
func Build[T any](b *Builder) Queue[T] {
	if b.reference {
		return NewMutexQueue[T](b.capacity)
	}
	return NewRing[T](b.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is a fixed 64-8 bytes of padding placed after a slot's 8-byte
// sequence counter and its payload, so every slot is at least a cache
// line long and adjacent slots' sequence counters never share a line.
type padShort [64 - 8]byte
