// File: api/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Introspection hooks for pools and channels.

package api

// Debug collects named probes and evaluates them on demand.
type Debug interface {
	// DumpState evaluates every probe; values are whatever the probes return,
	// typically PoolStats or a metrics snapshot.
	DumpState() map[string]any

	// RegisterProbe adds or replaces the probe stored under name.
	RegisterProbe(name string, fn func() any)
}
