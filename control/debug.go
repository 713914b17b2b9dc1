// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry exposing chunk pool statistics and channel counters.

package control

import (
	"sync"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/pool"
)

// DebugProbes maps names to functions evaluated by DumpState.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

var _ api.Debug = (*DebugProbes)(nil)

func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe stores fn under name, replacing any earlier probe.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterPool reports p.Stats() under name.
func (dp *DebugProbes) RegisterPool(name string, p *pool.ChunkPool) {
	dp.RegisterProbe(name, func() any { return p.Stats() })
}

// RegisterMetrics reports a snapshot of m, e.g. the counters channels feed
// through channel.WithMetrics.
func (dp *DebugProbes) RegisterMetrics(name string, m api.Metrics) {
	dp.RegisterProbe(name, func() any { return m.GetSnapshot() })
}

// DumpState evaluates all probes. Probes run under the read lock and must not
// register new probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for name, fn := range dp.probes {
		out[name] = fn()
	}
	return out
}
