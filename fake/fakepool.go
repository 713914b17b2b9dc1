// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-io/pool"

// NewPool returns a small heap-backed chunk pool so tests exercise chunk
// boundaries without touching the shared default pool.
func NewPool(chunkSize, capacity int) *pool.ChunkPool {
	return pool.NewChunkPool(chunkSize, capacity, pool.HeapAllocator{})
}
