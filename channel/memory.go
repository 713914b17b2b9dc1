// File: channel/memory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native memory adapter: channel transfers to and from bounded memory spans.
// Offsets and lengths are validated against the span before any state changes.

package channel

import (
	"context"

	"github.com/momentics/hioload-io/memory"
)

// ReadAvailableMemory copies up to length buffered bytes into dst at offset.
// If nothing is buffered and length > 0 it waits for content once and retries.
// It returns io.EOF once the stream is cleanly drained.
func (c *ByteChannel) ReadAvailableMemory(ctx context.Context, dst memory.Memory, offset, length int64) (int64, error) {
	buf, err := dst.Bytes(offset, length)
	if err != nil {
		return 0, err
	}
	n, err := c.ReadAvailable(buf)
	if n > 0 || err != nil || length == 0 {
		return int64(n), err
	}
	if err := c.AwaitContent(ctx); err != nil {
		return 0, err
	}
	n, err = c.ReadAvailable(buf)
	return int64(n), err
}

// ReadFullyMemory fills dst[offset:offset+length], advancing through the span
// as bytes arrive. A clean close with bytes still missing fails with
// *api.IncompleteReadError.
func (c *ByteChannel) ReadFullyMemory(ctx context.Context, dst memory.Memory, offset, length int64) error {
	buf, err := dst.Bytes(offset, length)
	if err != nil {
		return err
	}
	return c.ReadFully(ctx, buf)
}

// WriteAvailableMemory enqueues up to length bytes from src at offset.
// If no capacity is free and length > 0 it waits for space once and retries.
func (c *ByteChannel) WriteAvailableMemory(ctx context.Context, src memory.Memory, offset, length int64) (int64, error) {
	buf, err := src.Bytes(offset, length)
	if err != nil {
		return 0, err
	}
	n, err := c.WriteAvailable(buf)
	if n > 0 || err != nil || length == 0 {
		return int64(n), err
	}
	if err := c.awaitFreeSpace(ctx); err != nil {
		return 0, err
	}
	n, err = c.WriteAvailable(buf)
	return int64(n), err
}

// WriteFullyMemory enqueues src[offset:offset+length], flushing whenever the
// channel fills and continuing from the advanced offset once space frees up.
func (c *ByteChannel) WriteFullyMemory(ctx context.Context, src memory.Memory, offset, length int64) error {
	buf, err := src.Bytes(offset, length)
	if err != nil {
		return err
	}
	return c.WriteFully(ctx, buf)
}
