// File: channel/channel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Channel state, construction and the close/cancel state machine.

package channel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/pool"
)

// Metric keys reported when WithMetrics is set.
const (
	MetricBytesWritten   = "channel.bytes_written"
	MetricBytesRead      = "channel.bytes_read"
	MetricChannelsClosed = "channel.closed"
	MetricChannelsFailed = "channel.failed"
)

// ByteChannel is a buffered, backpressured single-producer/single-consumer
// byte pipe built on pooled chunks.
type ByteChannel struct {
	id        uuid.UUID
	autoFlush bool
	capacity  int64
	pool      *pool.ChunkPool
	log       *slog.Logger
	metrics   api.Metrics

	mu           sync.Mutex
	readable     pool.Chain   // flushed bytes visible to the reader
	writable     *pool.Chunk  // chunk being filled
	full         *queue.Queue // filled chunks waiting for Flush, FIFO
	unflushed    int64        // bytes in full + writable
	closedWrite  bool
	closedRead   bool
	cause        error
	job          api.Job
	totalRead    int64
	totalWritten int64

	dataReady  chan struct{}
	spaceReady chan struct{}
	done       chan struct{} // closed once the channel is closed for write
}

var _ api.ByteChannel = (*ByteChannel)(nil)

// New creates an open channel. With autoFlush every write is published to the
// reader immediately; otherwise the producer must call Flush.
func New(autoFlush bool, opts ...Option) *ByteChannel {
	c := &ByteChannel{
		id:         uuid.New(),
		autoFlush:  autoFlush,
		capacity:   DefaultCapacity,
		pool:       pool.Default(),
		log:        slog.Default(),
		full:       queue.New(),
		dataReady:  make(chan struct{}, 1),
		spaceReady: make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the channel identifier used in log records.
func (c *ByteChannel) ID() uuid.UUID { return c.id }

// AutoFlush reports whether writes are published immediately.
func (c *ByteChannel) AutoFlush() bool { return c.autoFlush }

// Capacity returns the high-water mark in bytes.
func (c *ByteChannel) Capacity() int { return int(c.capacity) }

// AvailableForRead returns the number of flushed, unread bytes.
func (c *ByteChannel) AvailableForRead() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.readable.Remaining())
}

// AvailableForWrite returns the free capacity, or 0 once closed for write.
func (c *ByteChannel) AvailableForWrite() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closedWrite {
		return 0
	}
	return int(c.freeLocked())
}

// IsClosedForWrite reports whether the producer side is closed.
func (c *ByteChannel) IsClosedForWrite() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closedWrite
}

// IsClosedForRead reports whether the stream is fully drained or discarded.
func (c *ByteChannel) IsClosedForRead() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closedRead
}

// Cause returns the latched close cause, or nil.
func (c *ByteChannel) Cause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// TotalBytesRead returns the number of bytes consumed so far.
func (c *ByteChannel) TotalBytesRead() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalRead
}

// TotalBytesWritten returns the number of bytes accepted so far.
func (c *ByteChannel) TotalBytesWritten() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalWritten
}

// Close closes the channel cleanly. It implements io.Closer.
func (c *ByteChannel) Close() error {
	c.CloseWithError(nil)
	return nil
}

// CloseWithError closes the channel for writing and reports whether this call
// changed its state. A nil cause is a clean close: pending bytes are flushed,
// readers drain them and then observe io.EOF, writers fail with
// api.ErrClosedForWrite. A non-nil cause discards every buffered byte, fails
// all parked and future operations with cause and cancels the attached job.
func (c *ByteChannel) CloseWithError(cause error) bool {
	c.mu.Lock()
	if c.closedWrite {
		c.mu.Unlock()
		return false
	}
	c.closedWrite = true
	var job api.Job
	if cause != nil {
		c.cause = cause
		c.releaseAllLocked()
		c.closedRead = true
		job = c.job
	} else {
		c.flushLocked()
		if c.writable != nil {
			// Emptied by the final flush.
			c.pool.Recycle(c.writable)
			c.writable = nil
		}
		if c.readable.Remaining() == 0 {
			c.closedRead = true
		}
	}
	close(c.done)
	c.mu.Unlock()

	if job != nil {
		job.Cancel(cause)
	}
	c.recordClose(cause)
	return true
}

// CloseRead abandons the stream from the consumer side: buffered bytes are
// discarded and any parked or future writer fails with cause
// (api.ErrChannelCancelled when nil).
func (c *ByteChannel) CloseRead(cause error) bool {
	if cause == nil {
		cause = api.ErrChannelCancelled
	}
	c.mu.Lock()
	if c.closedRead {
		c.mu.Unlock()
		return false
	}
	if c.cause == nil {
		c.cause = cause
	}
	cause = c.cause
	c.releaseAllLocked()
	wasOpen := !c.closedWrite
	c.closedWrite = true
	c.closedRead = true
	if wasOpen {
		close(c.done)
	}
	job := c.job
	c.mu.Unlock()

	notify(c.spaceReady)
	if job != nil {
		job.Cancel(cause)
	}
	c.recordClose(cause)
	return true
}

func (c *ByteChannel) recordClose(cause error) {
	if cause != nil {
		c.log.Debug("byte channel failed", "channel", c.id, "error", cause)
	} else {
		c.log.Debug("byte channel closed", "channel", c.id)
	}
	if c.metrics == nil {
		return
	}
	if cause != nil {
		c.metrics.Add(MetricChannelsFailed, 1)
	} else {
		c.metrics.Add(MetricChannelsClosed, 1)
	}
}

// freeLocked returns capacity minus flushed and unflushed bytes.
func (c *ByteChannel) freeLocked() int64 {
	free := c.capacity - c.readable.Remaining() - c.unflushed
	if free < 0 {
		return 0
	}
	return free
}

// releaseAllLocked recycles every chunk on both sides in one sweep.
func (c *ByteChannel) releaseAllLocked() {
	c.readable.Release(c.pool)
	for c.full.Length() > 0 {
		c.pool.Recycle(c.full.Remove().(*pool.Chunk))
	}
	if c.writable != nil {
		c.pool.Recycle(c.writable)
		c.writable = nil
	}
	c.unflushed = 0
}

// wait parks until sig fires, the channel closes or ctx is done.
func (c *ByteChannel) wait(ctx context.Context, sig <-chan struct{}) error {
	select {
	case <-sig:
	case <-c.done:
	case <-ctx.Done():
		return context.Cause(ctx)
	}
	return nil
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
