// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chunk storage backends.

package pool

import (
	"log/slog"
	"sync"

	"github.com/momentics/hioload-io/memory"
)

// Allocator provides and releases chunk storage.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

// HeapAllocator allocates chunk storage on the Go heap; Free leaves it to the GC.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) []byte { return make([]byte, size) }
func (HeapAllocator) Free([]byte)           {}

// NativeAllocator backs chunks with native regions (anonymous mmap on Linux).
// If a mapping cannot be created the chunk falls back to the Go heap.
type NativeAllocator struct {
	Logger *slog.Logger

	mu      sync.Mutex
	regions map[*byte]*memory.Native
	mapper  func(size int) (*memory.Native, error)
}

// NewNativeAllocator creates an allocator logging fallbacks to logger (nil = slog.Default()).
func NewNativeAllocator(logger *slog.Logger) *NativeAllocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &NativeAllocator{
		Logger:  logger,
		regions: make(map[*byte]*memory.Native),
		mapper:  memory.Allocate,
	}
}

// Alloc maps a region of size bytes.
func (a *NativeAllocator) Alloc(size int) []byte {
	n, err := a.mapper(size)
	if err != nil || size == 0 {
		if err != nil {
			a.Logger.Warn("native chunk allocation failed, using heap", "size", size, "error", err)
		}
		return make([]byte, size)
	}
	buf, _ := n.Bytes(0, int64(size))
	if n.Mapped() {
		a.mu.Lock()
		a.regions[&buf[0]] = n
		a.mu.Unlock()
	}
	return buf
}

// Free unmaps a region previously returned by Alloc; heap fallbacks are ignored.
func (a *NativeAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	a.mu.Lock()
	n, ok := a.regions[&buf[0]]
	delete(a.regions, &buf[0])
	a.mu.Unlock()
	if !ok {
		return
	}
	if err := n.Free(); err != nil {
		a.Logger.Warn("native chunk release failed", "size", len(buf), "error", err)
	}
}

// Mapped returns the number of live native regions.
func (a *NativeAllocator) Mapped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.regions)
}
