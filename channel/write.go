// File: channel/write.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channel

import (
	"context"
	"encoding/binary"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/pool"
)

// WriteAvailable copies as much of src as the free capacity allows, without
// waiting, borrowing chunks from the pool as they fill. It returns (0, nil)
// when the channel is at its high-water mark.
func (c *ByteChannel) WriteAvailable(src []byte) (int, error) {
	c.mu.Lock()
	n, err := c.writeLocked(src)
	c.mu.Unlock()
	if n > 0 && c.metrics != nil {
		c.metrics.Add(MetricBytesWritten, int64(n))
	}
	return n, err
}

func (c *ByteChannel) writeLocked(src []byte) (int, error) {
	if c.cause != nil {
		return 0, c.cause
	}
	if c.closedWrite {
		return 0, api.ErrClosedForWrite
	}
	free := c.freeLocked()
	if free == 0 || len(src) == 0 {
		return 0, nil
	}
	if int64(len(src)) > free {
		src = src[:free]
	}
	n := 0
	for len(src) > 0 {
		if c.writable == nil {
			c.writable = c.pool.Borrow()
		}
		k := c.writable.Write(src)
		src = src[k:]
		n += k
		if c.writable.WriteRemaining() == 0 {
			c.full.Add(c.writable)
			c.writable = nil
		}
	}
	c.unflushed += int64(n)
	c.totalWritten += int64(n)
	if c.autoFlush {
		c.flushLocked()
	}
	return n, nil
}

// WriteFully enqueues all of src. Whenever capacity runs out it flushes and
// waits for the reader to free space. It fails with the close cause, with
// api.ErrClosedForWrite after a clean close, or with the context cause.
func (c *ByteChannel) WriteFully(ctx context.Context, src []byte) error {
	_, err := c.writeFully(ctx, src)
	return err
}

func (c *ByteChannel) writeFully(ctx context.Context, src []byte) (int, error) {
	total := 0
	for len(src) > 0 {
		n, err := c.WriteAvailable(src)
		if err != nil {
			return total, err
		}
		total += n
		src = src[n:]
		if len(src) == 0 {
			break
		}
		if n == 0 {
			c.Flush()
			if err := c.wait(ctx, c.spaceReady); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Write implements io.Writer, waiting for free capacity as needed.
func (c *ByteChannel) Write(p []byte) (int, error) {
	return c.writeFully(context.Background(), p)
}

// Flush publishes every pending byte to the reader. No-op if nothing is pending.
func (c *ByteChannel) Flush() {
	c.mu.Lock()
	c.flushLocked()
	c.mu.Unlock()
}

// flushLocked moves queued full chunks onto the readable chain, then packs the
// partially filled writable chunk into the tail's free space. A writable chunk
// that packs completely stays with the writer for the next write; one that
// does not is published as is.
func (c *ByteChannel) flushLocked() {
	if c.unflushed == 0 {
		return
	}
	for c.full.Length() > 0 {
		c.readable.Append(c.full.Remove().(*pool.Chunk))
	}
	if c.writable != nil && !c.readable.Pack(c.writable) {
		c.readable.Append(c.writable)
		c.writable = nil
	}
	c.unflushed = 0
	notify(c.dataReady)
}

// awaitFreeSpace flushes and waits until some capacity is free.
func (c *ByteChannel) awaitFreeSpace(ctx context.Context) error {
	for {
		c.mu.Lock()
		switch {
		case c.cause != nil:
			err := c.cause
			c.mu.Unlock()
			return err
		case c.closedWrite:
			c.mu.Unlock()
			return api.ErrClosedForWrite
		case c.freeLocked() > 0:
			c.mu.Unlock()
			return nil
		}
		c.flushLocked()
		c.mu.Unlock()
		if err := c.wait(ctx, c.spaceReady); err != nil {
			return err
		}
	}
}

// WriteByte implements io.ByteWriter.
func (c *ByteChannel) WriteByte(b byte) error {
	return c.WriteFully(context.Background(), []byte{b})
}

// WriteUint16 writes v big-endian.
func (c *ByteChannel) WriteUint16(ctx context.Context, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return c.WriteFully(ctx, b[:])
}

// WriteUint32 writes v big-endian.
func (c *ByteChannel) WriteUint32(ctx context.Context, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return c.WriteFully(ctx, b[:])
}

// WriteUint64 writes v big-endian.
func (c *ByteChannel) WriteUint64(ctx context.Context, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return c.WriteFully(ctx, b[:])
}
