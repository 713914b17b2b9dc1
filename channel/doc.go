// Package channel
// Author: momentics <momentics@gmail.com>
//
// Sequential asynchronous byte channel for hioload-io.
//
// A ByteChannel moves bytes from one producer to one consumer through a chain
// of pooled chunks. Writers fill chunks borrowed lazily from a pool.ChunkPool
// and publish them to the reader on Flush (or automatically, in auto-flush
// mode); readers drain the chain in FIFO order and return emptied chunks to the
// pool immediately. Capacity acts as a high-water mark: once the buffered byte
// count reaches it, writers park until the reader frees space.
//
// Blocking operations take a context and park the calling goroutine on a
// signal channel, never a spinning thread. Closing with a cause fails every
// parked and future operation with that exact error; a clean close lets readers
// drain what was written and then report io.EOF.
//
// Access to each side must be serialized by the caller: one writer goroutine
// and one reader goroutine at a time.
package channel
