// File: api/control.go
// Package api defines the metrics sink used by channels.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Metrics accumulates named runtime counters.
type Metrics interface {
	// Add increments the counter key by delta.
	Add(key string, delta int64)
	// Counter returns the current value of key.
	Counter(key string) int64
	// GetSnapshot returns a copy of every recorded value.
	GetSnapshot() map[string]any
}
