// File: pool/chunkpool.go
// Package pool implements lock-free chunk recycling with a bounded free list.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/internal/concurrency"
)

// ChunkPool recycles fixed-size chunks. Borrow and Recycle are safe to call
// concurrently from any number of channels.
type ChunkPool struct {
	chunkSize int
	capacity  int
	alloc     Allocator

	// Free list; retained tracks its exact size so the bound holds even
	// though the queue rounds its slot count up to a power of two.
	free     *concurrency.BoundedQueue[*Chunk]
	retained atomic.Int64

	allocated atomic.Int64
	borrowed  atomic.Int64
	recycled  atomic.Int64
	discarded atomic.Int64
}

// NewChunkPool creates a pool of chunkSize-byte chunks retaining at most
// capacity idle chunks. A nil alloc uses the Go heap.
func NewChunkPool(chunkSize, capacity int, alloc Allocator) *ChunkPool {
	if chunkSize <= 0 {
		panic("pool: chunk size must be positive")
	}
	if capacity < 0 {
		capacity = 0
	}
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	return &ChunkPool{
		chunkSize: chunkSize,
		capacity:  capacity,
		alloc:     alloc,
		free:      concurrency.NewBoundedQueue[*Chunk](capacity),
	}
}

// ChunkSize returns the capacity of every chunk handed out by the pool.
func (p *ChunkPool) ChunkSize() int { return p.chunkSize }

// Capacity returns the maximum number of idle chunks retained.
func (p *ChunkPool) Capacity() int { return p.capacity }

// Borrow returns an empty chunk, allocating one if the pool is empty.
func (p *ChunkPool) Borrow() *Chunk {
	p.borrowed.Add(1)
	if c, ok := p.free.Dequeue(); ok {
		p.retained.Add(-1)
		c.pooled = false
		return c
	}
	p.allocated.Add(1)
	return &Chunk{buf: p.alloc.Alloc(p.chunkSize)}
}

// Recycle resets c and keeps it for reuse; past the bound it is released.
// Recycling nil, a foreign-sized chunk or an already pooled chunk is a no-op
// for the free list.
func (p *ChunkPool) Recycle(c *Chunk) {
	if c == nil || c.pooled {
		return
	}
	c.reset()
	if len(c.buf) != p.chunkSize {
		return
	}
	if p.retained.Add(1) > int64(p.capacity) || !p.enqueue(c) {
		p.retained.Add(-1)
		p.discard(c)
		return
	}
	p.recycled.Add(1)
}

func (p *ChunkPool) enqueue(c *Chunk) bool {
	c.pooled = true
	if p.free.Enqueue(c) {
		return true
	}
	c.pooled = false
	return false
}

func (p *ChunkPool) discard(c *Chunk) {
	p.discarded.Add(1)
	p.alloc.Free(c.buf)
	c.buf = nil
}

// Stats exposes allocation and reuse counters.
func (p *ChunkPool) Stats() api.PoolStats {
	return api.PoolStats{
		ChunkSize: p.chunkSize,
		Capacity:  p.capacity,
		Free:      int(p.retained.Load()),
		Allocated: p.allocated.Load(),
		Borrowed:  p.borrowed.Load(),
		Recycled:  p.recycled.Load(),
		Discarded: p.discarded.Load(),
	}
}
