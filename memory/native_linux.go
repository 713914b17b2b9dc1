//go:build linux

// File: memory/native_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific region mapping via anonymous private mmap.

package memory

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-io/api"
)

func mapRegion(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, api.NewError(api.ErrCodeResourceExhausted, "mmap failed").
			WithContext("size", size).
			WithContext("errno", err)
	}
	return data, true, nil
}

func unmapRegion(data []byte) error {
	return unix.Munmap(data)
}
