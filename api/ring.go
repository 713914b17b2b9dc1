// File: api/ring.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Bounded lock-free queue contract, used for pool free lists.

package api

// Ring is a bounded multi-producer/multi-consumer FIFO.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the queue capacity.
	Cap() int
}
