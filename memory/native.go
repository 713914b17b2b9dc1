// File: memory/native.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package memory

import (
	"sync"

	"github.com/momentics/hioload-io/api"
)

// Native is a memory region allocated outside the regular slice lifecycle.
// Free must be called exactly once; the span must not be used afterwards.
type Native struct {
	Memory
	once   sync.Once
	mapped bool
	err    error
}

// Allocate reserves size bytes of native memory. A mapping the OS refuses
// fails with an error matching api.ErrPoolExhausted.
func Allocate(size int) (*Native, error) {
	if size < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative allocation size").
			WithContext("size", size)
	}
	if size == 0 {
		return &Native{}, nil
	}
	data, mapped, err := mapRegion(size)
	if err != nil {
		return nil, err
	}
	return &Native{Memory: Memory{data: data}, mapped: mapped}, nil
}

// Mapped reports whether the region came from the OS mapper rather than the heap.
func (n *Native) Mapped() bool {
	return n.mapped
}

// Free releases the region. Later calls return the first call's result.
func (n *Native) Free() error {
	n.once.Do(func() {
		if n.mapped {
			n.err = unmapRegion(n.data)
		}
		n.data = nil
	})
	return n.err
}
