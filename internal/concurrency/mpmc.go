// File: internal/concurrency/mpmc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded multi-producer/multi-consumer queue used as the chunk pool free list.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-io/api"
)

const cacheLinePad = 64

// BoundedQueue is a lock-free MPMC queue with a fixed number of slots.
// Each slot carries a sequence number (Vyukov scheme) so producers and
// consumers never observe a half-published value.
type BoundedQueue[T any] struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []slot[T]
}

var _ api.Ring[int] = (*BoundedQueue[int])(nil)

type slot[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewBoundedQueue creates a queue holding at least capacity items.
// The slot count is rounded up to a power of two.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	q := &BoundedQueue[T]{
		mask:  uint64(size - 1),
		cells: make([]slot[T], size),
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// Enqueue adds val; returns false if the queue is full.
func (q *BoundedQueue[T]) Enqueue(val T) bool {
	for {
		tail := q.tail.Load()
		c := &q.cells[tail&q.mask]
		dif := int64(c.sequence.Load()) - int64(tail)
		switch {
		case dif == 0:
			if q.tail.CompareAndSwap(tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false
		}
	}
}

// Dequeue removes the oldest item; ok is false if the queue is empty.
func (q *BoundedQueue[T]) Dequeue() (item T, ok bool) {
	for {
		head := q.head.Load()
		c := &q.cells[head&q.mask]
		dif := int64(c.sequence.Load()) - int64(head+1)
		switch {
		case dif == 0:
			if q.head.CompareAndSwap(head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + q.mask + 1)
				return item, true
			}
		case dif < 0:
			return item, false
		}
	}
}

// Len returns an approximate item count; exact only when the queue is quiescent.
func (q *BoundedQueue[T]) Len() int {
	n := int64(q.tail.Load()) - int64(q.head.Load())
	if n < 0 {
		return 0
	}
	return int(n)
}

// Cap returns the slot count.
func (q *BoundedQueue[T]) Cap() int {
	return len(q.cells)
}
