// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Chunk pool accounting shared by pools, probes and tools.

package api

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// PoolStats aggregates chunk allocation and reuse counters.
type PoolStats struct {
	ChunkSize int   // bytes per chunk
	Capacity  int   // max chunks retained while idle
	Free      int   // chunks currently retained
	Allocated int64 // chunks created because the pool was empty
	Borrowed  int64 // total Borrow calls
	Recycled  int64 // chunks returned and retained
	Discarded int64 // chunks returned while the pool was full
}

// InUse is the number of chunks borrowed and not yet returned.
func (s PoolStats) InUse() int64 {
	return s.Allocated - int64(s.Free) - s.Discarded
}

// String renders the stats for logs and debug probes.
func (s PoolStats) String() string {
	return fmt.Sprintf("chunk=%s free=%d/%d in-use=%d allocated=%s borrowed=%s discarded=%s",
		humanize.IBytes(uint64(s.ChunkSize)),
		s.Free, s.Capacity,
		s.InUse(),
		humanize.Comma(s.Allocated),
		humanize.Comma(s.Borrowed),
		humanize.Comma(s.Discarded))
}
