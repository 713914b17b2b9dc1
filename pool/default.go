// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

const (
	// DefaultChunkSize is the byte capacity of chunks in the default pool.
	DefaultChunkSize = 4096
	// DefaultCapacity bounds the idle chunks kept by the default pool.
	DefaultCapacity = 1024
)

var (
	defaultOnce sync.Once
	defaultPool *ChunkPool
)

// Default returns the process-wide chunk pool so all channels share
// recycled chunks instead of fragmenting allocations.
func Default() *ChunkPool {
	defaultOnce.Do(func() {
		defaultPool = NewChunkPool(DefaultChunkSize, DefaultCapacity, nil)
	})
	return defaultPool
}
