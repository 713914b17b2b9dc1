//go:build !linux

// File: memory/native_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package memory

func mapRegion(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func unmapRegion([]byte) error { return nil }
