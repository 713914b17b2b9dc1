// File: cmd/bytepump/main.go
// Package main
// Pumps generated bytes through a pair of joined byte channels and reports
// throughput together with chunk pool statistics.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-io/channel"
	"github.com/momentics/hioload-io/control"
	"github.com/momentics/hioload-io/pool"
	"github.com/momentics/hioload-io/task"
)

func main() {
	def := control.DefaultConfig()
	total := flag.Int64("bytes", 256<<20, "number of bytes to pump")
	block := flag.Int("block", 16<<10, "producer write size")
	chunk := flag.Int("chunk", def.ChunkSize, "pool chunk size")
	poolCap := flag.Int("pool", def.PoolCapacity, "idle chunks retained by the pool")
	chanCap := flag.Int("capacity", 64<<10, "channel capacity in bytes")
	autoFlush := flag.Bool("autoflush", false, "publish every write immediately")
	native := flag.Bool("native", false, "back chunks with mmap'd memory")
	timeout := flag.Duration("timeout", 0, "cancel the producer after this long (0 disables)")
	debug := flag.Bool("debug", false, "enable debug logging and dump probes on exit")
	rounds := flag.Int("rounds", 1, "number of pump rounds; each round picks up the current config")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := control.NewConfigStore(control.Config{
		ChunkSize:       *chunk,
		PoolCapacity:    *poolCap,
		ChannelCapacity: *chanCap,
		AutoFlush:       *autoFlush,
		NativeMemory:    *native,
	})
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if *block <= 0 || *total < 0 || *rounds < 1 {
		logger.Error("block and rounds must be positive and bytes non-negative")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store.OnReload(func(cfg control.Config) {
		logger.Info("configuration reloaded",
			"channel_capacity", cfg.ChannelCapacity,
			"autoflush", cfg.AutoFlush)
	})
	stopReload := watchReload(store, logger)
	defer stopReload()

	cfg := store.GetSnapshot()
	p := cfg.NewPool(logger)
	metrics := control.NewMetricsRegistry()
	probes := control.NewDebugProbes()
	probes.RegisterPool("pool", p)
	probes.RegisterMetrics("metrics", metrics)

	for round := 1; round <= *rounds; round++ {
		// Pool geometry is fixed at startup; channel settings follow reloads.
		err := pump(ctx, store.GetSnapshot(), p, metrics, *total, *block, *timeout, logger)
		fmt.Printf("pool: %s\n", p.Stats())
		if err != nil {
			logger.Error("pump failed", "round", round, "error", err)
			os.Exit(1)
		}
	}
	if *debug {
		state, _ := json.MarshalIndent(probes.DumpState(), "", "  ")
		fmt.Println(string(state))
	}
}

func pump(ctx context.Context, cfg control.Config, p *pool.ChunkPool, metrics *control.MetricsRegistry, total int64, block int, timeout time.Duration, logger *slog.Logger) error {
	opts := []channel.Option{
		channel.WithPool(p),
		channel.WithConfig(cfg),
		channel.WithLogger(logger),
		channel.WithMetrics(metrics),
	}

	src, producer := task.Writer(ctx, cfg.AutoFlush, func(ctx context.Context, ch *channel.ByteChannel) error {
		buf := make([]byte, block)
		for i := range buf {
			buf[i] = byte(i)
		}
		for left := total; left > 0; {
			n := int64(len(buf))
			if left < n {
				n = left
			}
			if err := ch.WriteFully(ctx, buf[:n]); err != nil {
				return err
			}
			left -= n
		}
		return nil
	}, opts...)
	if timeout > 0 {
		defer task.CancelAfter(producer, timeout)()
	}

	dst := channel.New(cfg.AutoFlush, opts...)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return src.JoinTo(gctx, dst, true) })
	var received int64
	g.Go(func() error {
		var err error
		received, err = dst.Discard(gctx, total)
		return err
	})
	err := g.Wait()
	elapsed := time.Since(start)

	rate := uint64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		rate = uint64(float64(received) / secs)
	}
	fmt.Printf("pumped %s in %s (%s/s, capacity %s)\n",
		humanize.Bytes(uint64(received)), elapsed.Round(time.Millisecond),
		humanize.Bytes(rate), humanize.IBytes(uint64(cfg.ChannelCapacity)))
	return err
}
