// File: api/channel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte channel contracts shared by the channel core, adapters and producers.

package api

import "context"

// ByteReadChannel is the consumer side of a byte channel.
type ByteReadChannel interface {
	// ReadAvailable copies buffered bytes into dst without waiting.
	// It returns (0, io.EOF) once the stream is cleanly drained and
	// (0, nil) when the caller should wait and retry.
	ReadAvailable(dst []byte) (int, error)

	// ReadFully fills dst, waiting for producers as needed.
	ReadFully(ctx context.Context, dst []byte) error

	// AwaitContent waits until at least one byte is readable or the channel closes.
	AwaitContent(ctx context.Context) error

	// AvailableForRead reports the number of flushed, unread bytes.
	AvailableForRead() int

	// CloseRead abandons the stream, discarding buffered bytes.
	CloseRead(cause error) bool

	IsClosedForRead() bool
	Cause() error
}

// ByteWriteChannel is the producer side of a byte channel.
type ByteWriteChannel interface {
	// WriteAvailable enqueues as much of src as fits without waiting.
	WriteAvailable(src []byte) (int, error)

	// WriteFully enqueues all of src, waiting for free capacity as needed.
	WriteFully(ctx context.Context, src []byte) error

	// Flush publishes pending bytes to the reader.
	Flush()

	// CloseWithError closes the channel for writing. A nil cause is a clean close.
	CloseWithError(cause error) bool

	AvailableForWrite() int
	AutoFlush() bool
	IsClosedForWrite() bool
}

// ByteChannel combines both sides.
type ByteChannel interface {
	ByteReadChannel
	ByteWriteChannel
}
