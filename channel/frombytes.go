// File: channel/frombytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channel

import "github.com/momentics/hioload-io/api"

// FromBytes returns a channel that is already closed for write and holds a
// copy of content[offset:offset+length], split across pooled chunks as
// needed. The capacity limit does not apply to the preloaded bytes.
func FromBytes(content []byte, offset, length int, opts ...Option) (*ByteChannel, error) {
	if err := api.InvalidRange(int64(offset), int64(length), int64(len(content))); err != nil {
		return nil, err
	}
	c := New(false, opts...)
	src := content[offset : offset+length]
	for len(src) > 0 {
		chunk := c.pool.Borrow()
		n := chunk.Write(src)
		src = src[n:]
		c.readable.Append(chunk)
	}
	c.totalWritten = int64(length)
	c.closedWrite = true
	c.closedRead = length == 0
	close(c.done)
	return c, nil
}

// Empty returns a channel that is closed and yields io.EOF on the first read.
func Empty(opts ...Option) *ByteChannel {
	c, _ := FromBytes(nil, 0, 0, opts...)
	return c
}
