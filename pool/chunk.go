// File: pool/chunk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Chunk is a fixed-capacity memory segment with independent read and write
// cursors. A chunk is owned by exactly one party at a time: its pool, the
// writer filling it, or the chain holding it for a reader.
type Chunk struct {
	buf    []byte
	start  int // read cursor
	end    int // write cursor
	next   *Chunk
	pooled bool
}

// NewChunk wraps buf as a standalone chunk, mainly for tests and adapters.
func NewChunk(buf []byte) *Chunk {
	return &Chunk{buf: buf}
}

// Cap returns the chunk capacity.
func (c *Chunk) Cap() int { return len(c.buf) }

// ReadRemaining returns the number of written, unread bytes.
func (c *Chunk) ReadRemaining() int { return c.end - c.start }

// WriteRemaining returns the free space after the write cursor.
func (c *Chunk) WriteRemaining() int { return len(c.buf) - c.end }

// Readable returns the unread bytes. The slice aliases the chunk.
func (c *Chunk) Readable() []byte { return c.buf[c.start:c.end] }

// Writable returns the free space. The slice aliases the chunk.
func (c *Chunk) Writable() []byte { return c.buf[c.end:] }

// Next returns the following chunk in a chain.
func (c *Chunk) Next() *Chunk { return c.next }

// Commit advances the write cursor after n bytes were stored into Writable.
func (c *Chunk) Commit(n int) {
	if n < 0 || n > c.WriteRemaining() {
		panic("pool: commit out of range")
	}
	c.end += n
}

// Discard advances the read cursor by n bytes.
func (c *Chunk) Discard(n int) {
	if n < 0 || n > c.ReadRemaining() {
		panic("pool: discard out of range")
	}
	c.start += n
}

// Write stores as much of p as fits and returns the count.
func (c *Chunk) Write(p []byte) int {
	n := copy(c.buf[c.end:], p)
	c.end += n
	return n
}

// Read copies unread bytes into p, advancing the read cursor.
func (c *Chunk) Read(p []byte) int {
	n := copy(p, c.buf[c.start:c.end])
	c.start += n
	return n
}

// reset clears cursors and link so no later owner sees residual state.
func (c *Chunk) reset() {
	c.start = 0
	c.end = 0
	c.next = nil
}
