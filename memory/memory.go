// File: memory/memory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package memory

import "github.com/momentics/hioload-io/api"

// Memory is a bounded span of bytes. The zero value is an empty span.
type Memory struct {
	data []byte
}

// Empty is the zero-length span.
var Empty = Memory{}

// Of wraps an existing slice. The span aliases b.
func Of(b []byte) Memory {
	return Memory{data: b}
}

// Size returns the span length in bytes.
func (m Memory) Size() int64 {
	return int64(len(m.data))
}

// Slice returns the sub-span [offset, offset+length).
func (m Memory) Slice(offset, length int64) (Memory, error) {
	if err := api.InvalidRange(offset, length, m.Size()); err != nil {
		return Empty, err
	}
	return Memory{data: m.data[offset : offset+length : offset+length]}, nil
}

// Bytes returns the window [offset, offset+length) as a slice aliasing the span.
func (m Memory) Bytes(offset, length int64) ([]byte, error) {
	if err := api.InvalidRange(offset, length, m.Size()); err != nil {
		return nil, err
	}
	return m.data[offset : offset+length : offset+length], nil
}

// LoadAt returns the byte at index.
func (m Memory) LoadAt(index int64) (byte, error) {
	if err := api.InvalidRange(index, 1, m.Size()); err != nil {
		return 0, err
	}
	return m.data[index], nil
}

// StoreAt sets the byte at index.
func (m Memory) StoreAt(index int64, v byte) error {
	if err := api.InvalidRange(index, 1, m.Size()); err != nil {
		return err
	}
	m.data[index] = v
	return nil
}

// CopyTo copies length bytes starting at offset into dst at dstOffset.
// Overlapping spans are handled like the builtin copy.
func (m Memory) CopyTo(dst Memory, offset, length, dstOffset int64) error {
	src, err := m.Bytes(offset, length)
	if err != nil {
		return err
	}
	out, err := dst.Bytes(dstOffset, length)
	if err != nil {
		return err
	}
	copy(out, src)
	return nil
}

// Fill sets length bytes starting at offset to v.
func (m Memory) Fill(offset, length int64, v byte) error {
	b, err := m.Bytes(offset, length)
	if err != nil {
		return err
	}
	for i := range b {
		b[i] = v
	}
	return nil
}
