// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection layer for hioload-io.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed config snapshots with validation and reload listeners
//   - Counters fed by channels (bytes moved, closes, failures)
//   - Debug probe registration, e.g. chunk pool statistics
package control
