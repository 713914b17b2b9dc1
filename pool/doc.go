// Package pool
// Author: momentics <momentics@gmail.com>
//
// Chunk buffering layer for hioload-io.
// Implements fixed-capacity chunks, FIFO chunk chains and a bounded,
// concurrency-safe chunk pool with pluggable storage (Go heap or native mmap).
// See chunk.go, chain.go, chunkpool.go for implementation details.
package pool
