// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with validated updates and reload propagation.

package control

import (
	"log/slog"
	"sync"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/pool"
)

// Config holds the tunables of the chunk pool and the channels built on it.
type Config struct {
	ChunkSize       int  // bytes per pooled chunk
	PoolCapacity    int  // idle chunks retained by the pool
	ChannelCapacity int  // per-channel high-water mark in bytes
	AutoFlush       bool // publish every write immediately
	NativeMemory    bool // back chunks with mmap'd regions instead of the heap
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:       pool.DefaultChunkSize,
		PoolCapacity:    pool.DefaultCapacity,
		ChannelCapacity: pool.DefaultChunkSize,
		AutoFlush:       true,
	}
}

// Validate rejects non-positive sizes.
func (c Config) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return api.NewError(api.ErrCodeInvalidArgument, "chunk size must be positive").
			WithContext("chunk_size", c.ChunkSize)
	case c.PoolCapacity < 0:
		return api.NewError(api.ErrCodeInvalidArgument, "pool capacity must not be negative").
			WithContext("pool_capacity", c.PoolCapacity)
	case c.ChannelCapacity <= 0:
		return api.NewError(api.ErrCodeInvalidArgument, "channel capacity must be positive").
			WithContext("channel_capacity", c.ChannelCapacity)
	}
	return nil
}

// NewPool builds a chunk pool from the config.
func (c Config) NewPool(logger *slog.Logger) *pool.ChunkPool {
	var alloc pool.Allocator = pool.HeapAllocator{}
	if c.NativeMemory {
		alloc = pool.NewNativeAllocator(logger)
	}
	return pool.NewChunkPool(c.ChunkSize, c.PoolCapacity, alloc)
}

// ConfigStore holds the current Config and notifies listeners on change.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg.
func NewConfigStore(cfg Config) (*ConfigStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ConfigStore{config: cfg}, nil
}

// GetSnapshot returns a copy of the current config.
func (cs *ConfigStore) GetSnapshot() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Update applies fn to a copy of the config, validates the result and, if
// valid, stores it and calls every listener synchronously with the new value.
func (cs *ConfigStore) Update(fn func(*Config)) error {
	cs.mu.Lock()
	next := cs.config
	fn(&next)
	if err := next.Validate(); err != nil {
		cs.mu.Unlock()
		return err
	}
	cs.config = next
	listeners := append([]func(Config){}, cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return nil
}

// OnReload registers a listener called after each successful Update.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
