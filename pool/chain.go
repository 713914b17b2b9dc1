// File: pool/chain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Chain is a FIFO of chunks holding buffered, unread bytes.
// The zero value is an empty chain. Not safe for concurrent use.
type Chain struct {
	head  *Chunk
	tail  *Chunk
	count int
	size  int64
}

// Append links c at the tail. c must not belong to another chain.
func (ch *Chain) Append(c *Chunk) {
	if c.next != nil {
		panic("pool: chunk already linked")
	}
	if ch.tail == nil {
		ch.head = c
	} else {
		ch.tail.next = c
	}
	ch.tail = c
	ch.count++
	ch.size += int64(c.ReadRemaining())
}

// Pack moves as many unread bytes of c as fit into the free space of the tail
// chunk and reports whether c was emptied. An emptied c is reset so its owner
// can keep filling it. c must not belong to the chain.
func (ch *Chain) Pack(c *Chunk) bool {
	if ch.tail != nil && ch.tail != c {
		n := ch.tail.Write(c.Readable())
		c.start += n
		ch.size += int64(n)
	}
	if c.ReadRemaining() > 0 {
		return false
	}
	c.start, c.end = 0, 0
	return true
}

// Head returns the oldest chunk, or nil.
func (ch *Chain) Head() *Chunk { return ch.head }

// PopHead unlinks and returns the oldest chunk, or nil.
func (ch *Chain) PopHead() *Chunk {
	c := ch.head
	if c == nil {
		return nil
	}
	ch.head = c.next
	if ch.head == nil {
		ch.tail = nil
	}
	c.next = nil
	ch.count--
	ch.size -= int64(c.ReadRemaining())
	return c
}

// Remaining returns the unread byte count across all chunks.
func (ch *Chain) Remaining() int64 { return ch.size }

// Len returns the number of chunks.
func (ch *Chain) Len() int { return ch.count }

// Read drains up to len(p) bytes in FIFO order, recycling emptied chunks to pool.
func (ch *Chain) Read(p []byte, pool *ChunkPool) int {
	total := 0
	for len(p) > 0 && ch.head != nil {
		n := ch.head.Read(p)
		total += n
		ch.size -= int64(n)
		p = p[n:]
		if ch.head.ReadRemaining() == 0 {
			pool.Recycle(ch.PopHead())
		}
	}
	return total
}

// Skip discards up to n bytes and returns the count skipped.
func (ch *Chain) Skip(n int64, pool *ChunkPool) int64 {
	var skipped int64
	for n > 0 && ch.head != nil {
		k := int64(ch.head.ReadRemaining())
		if k > n {
			k = n
		}
		ch.head.Discard(int(k))
		ch.size -= k
		skipped += k
		n -= k
		if ch.head.ReadRemaining() == 0 {
			pool.Recycle(ch.PopHead())
		}
	}
	return skipped
}

// Release returns every chunk to pool and empties the chain.
func (ch *Chain) Release(pool *ChunkPool) {
	for c := ch.PopHead(); c != nil; c = ch.PopHead() {
		pool.Recycle(c)
	}
}
