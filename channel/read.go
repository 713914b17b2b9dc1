// File: channel/read.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channel

import (
	"context"
	"encoding/binary"
	"errors"
	"io"

	"github.com/momentics/hioload-io/api"
)

// ReadAvailable copies up to len(dst) flushed bytes without waiting.
// It returns the close cause if the channel failed, (0, io.EOF) once the
// stream is cleanly drained, and (0, nil) when nothing is buffered yet.
func (c *ByteChannel) ReadAvailable(dst []byte) (int, error) {
	c.mu.Lock()
	n, err := c.readLocked(dst)
	c.mu.Unlock()
	c.afterRead(n)
	return n, err
}

func (c *ByteChannel) readLocked(dst []byte) (int, error) {
	if c.cause != nil {
		return 0, c.cause
	}
	if c.readable.Remaining() > 0 {
		n := c.readable.Read(dst, c.pool)
		c.totalRead += int64(n)
		if c.closedWrite && c.readable.Remaining() == 0 {
			c.closedRead = true
		}
		return n, nil
	}
	if c.closedWrite {
		c.closedRead = true
		return 0, io.EOF
	}
	return 0, nil
}

func (c *ByteChannel) afterRead(n int) {
	if n == 0 {
		return
	}
	notify(c.spaceReady)
	if c.metrics != nil {
		c.metrics.Add(MetricBytesRead, int64(n))
	}
}

// ReadFully fills dst, waiting for the producer as needed. If the channel is
// closed cleanly before enough bytes arrive it fails with
// *api.IncompleteReadError without consuming the remainder; if the channel
// failed it returns the close cause.
func (c *ByteChannel) ReadFully(ctx context.Context, dst []byte) error {
	for len(dst) > 0 {
		c.mu.Lock()
		if c.cause != nil {
			err := c.cause
			c.mu.Unlock()
			return err
		}
		avail := c.readable.Remaining()
		if c.closedWrite && avail < int64(len(dst)) {
			c.mu.Unlock()
			return &api.IncompleteReadError{Required: int64(len(dst)), Available: avail}
		}
		if avail > 0 {
			n, _ := c.readLocked(dst)
			c.mu.Unlock()
			c.afterRead(n)
			dst = dst[n:]
			continue
		}
		c.mu.Unlock()
		if err := c.wait(ctx, c.dataReady); err != nil {
			return err
		}
	}
	return nil
}

// Read implements io.Reader, waiting until at least one byte is available.
func (c *ByteChannel) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := c.ReadAvailable(p)
		if n > 0 || err != nil {
			return n, err
		}
		if err := c.wait(context.Background(), c.dataReady); err != nil {
			return 0, err
		}
	}
}

// AwaitContent waits until at least one byte is readable or the channel is
// closed for write. It returns the close cause if the channel failed.
func (c *ByteChannel) AwaitContent(ctx context.Context) error {
	for {
		c.mu.Lock()
		cause, ready := c.cause, c.readable.Remaining() > 0 || c.closedWrite
		c.mu.Unlock()
		if cause != nil {
			return cause
		}
		if ready {
			return nil
		}
		if err := c.wait(ctx, c.dataReady); err != nil {
			return err
		}
	}
}

// Discard drops up to limit bytes, waiting for the producer as needed, and
// returns how many were dropped. Reaching end of stream is not an error.
func (c *ByteChannel) Discard(ctx context.Context, limit int64) (int64, error) {
	if limit < 0 {
		return 0, api.InvalidRange(0, limit, -1)
	}
	var total int64
	for total < limit {
		c.mu.Lock()
		if c.cause != nil {
			err := c.cause
			c.mu.Unlock()
			return total, err
		}
		if c.readable.Remaining() > 0 {
			n := c.readable.Skip(limit-total, c.pool)
			c.totalRead += n
			if c.closedWrite && c.readable.Remaining() == 0 {
				c.closedRead = true
			}
			c.mu.Unlock()
			c.afterRead(int(n))
			total += n
			continue
		}
		if c.closedWrite {
			c.closedRead = true
			c.mu.Unlock()
			return total, nil
		}
		c.mu.Unlock()
		if err := c.wait(ctx, c.dataReady); err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadByte implements io.ByteReader.
func (c *ByteChannel) ReadByte() (byte, error) {
	var b [1]byte
	if err := c.readExact(context.Background(), b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian 16-bit value.
func (c *ByteChannel) ReadUint16(ctx context.Context) (uint16, error) {
	var b [2]byte
	if err := c.readExact(ctx, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// ReadUint32 reads a big-endian 32-bit value.
func (c *ByteChannel) ReadUint32(ctx context.Context) (uint32, error) {
	var b [4]byte
	if err := c.readExact(ctx, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// ReadUint64 reads a big-endian 64-bit value.
func (c *ByteChannel) ReadUint64(ctx context.Context) (uint64, error) {
	var b [8]byte
	if err := c.readExact(ctx, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// readExact is ReadFully that reports io.EOF when nothing at all was left.
func (c *ByteChannel) readExact(ctx context.Context, dst []byte) error {
	err := c.ReadFully(ctx, dst)
	var short *api.IncompleteReadError
	if errors.As(err, &short) && short.Available == 0 && short.Required == int64(len(dst)) {
		return io.EOF
	}
	return err
}
