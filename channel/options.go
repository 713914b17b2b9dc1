// File: channel/options.go
// Package channel defines functional options for ByteChannel.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package channel

import (
	"log/slog"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/control"
	"github.com/momentics/hioload-io/pool"
)

// DefaultCapacity is the default high-water mark in bytes.
const DefaultCapacity = pool.DefaultChunkSize

// Option customizes channel construction.
type Option func(*ByteChannel)

// WithPool sets the chunk pool; defaults to pool.Default().
func WithPool(p *pool.ChunkPool) Option {
	return func(c *ByteChannel) {
		if p != nil {
			c.pool = p
		}
	}
}

// WithCapacity overrides the high-water mark. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *ByteChannel) {
		if n > 0 {
			c.capacity = int64(n)
		}
	}
}

// WithLogger attaches a structured logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *ByteChannel) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics reports byte and close counters into m, typically a
// *control.MetricsRegistry.
func WithMetrics(m api.Metrics) Option {
	return func(c *ByteChannel) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithConfig applies the channel-level settings of cfg.
func WithConfig(cfg control.Config) Option {
	return WithCapacity(cfg.ChannelCapacity)
}
