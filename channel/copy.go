// File: channel/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channel

import (
	"context"
	"io"
	"math"

	"github.com/momentics/hioload-io/api"
)

// CopyTo moves up to limit bytes from c to dst, stopping early at end of
// stream. Bytes pass through a pooled scratch chunk. Any failure, whether from
// the source, the destination or ctx, closes dst with that error and is
// returned together with the number of bytes already moved.
func (c *ByteChannel) CopyTo(ctx context.Context, dst api.ByteWriteChannel, limit int64) (int64, error) {
	if limit < 0 {
		return 0, api.InvalidRange(0, limit, -1)
	}
	scratch := c.pool.Borrow()
	defer c.pool.Recycle(scratch)
	buf := scratch.Writable()

	fail := func(err error) error {
		dst.CloseWithError(err)
		return err
	}

	var copied int64
	for copied < limit {
		want := int64(len(buf))
		if rest := limit - copied; rest < want {
			want = rest
		}
		n, err := c.ReadAvailable(buf[:want])
		if err == io.EOF {
			break
		}
		if err != nil {
			return copied, fail(err)
		}
		if n == 0 {
			// Publish what was moved so far before parking on the source.
			dst.Flush()
			if err := c.AwaitContent(ctx); err != nil {
				return copied, fail(err)
			}
			continue
		}
		if err := dst.WriteFully(ctx, buf[:n]); err != nil {
			return copied, fail(err)
		}
		copied += int64(n)
	}
	dst.Flush()
	return copied, nil
}

// JoinTo copies everything c produces into dst. With closeOnEnd, dst is
// closed once c is drained; a failed source closes dst with the failure.
func (c *ByteChannel) JoinTo(ctx context.Context, dst api.ByteWriteChannel, closeOnEnd bool) error {
	if _, err := c.CopyTo(ctx, dst, math.MaxInt64); err != nil {
		return err
	}
	if closeOnEnd {
		dst.CloseWithError(c.Cause())
	}
	return nil
}
