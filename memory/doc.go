// Package memory
// Author: momentics <momentics@gmail.com>
//
// Bounds-checked views over raw memory regions. A Memory value is a
// capability (base + length): every accessor validates offsets against the
// span, so callers exchanging bytes with syscalls or foreign buffers never
// perform unchecked pointer arithmetic. Native regions are mapped with
// anonymous mmap on Linux and fall back to the Go heap elsewhere.
package memory
