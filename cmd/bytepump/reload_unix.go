//go:build unix

// File: cmd/bytepump/reload_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/momentics/hioload-io/control"
)

// watchReload re-reads the channel settings on SIGHUP until the returned
// function is called.
func watchReload(store *control.ConfigStore, logger *slog.Logger) func() {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-hup:
				if err := reloadFromEnv(store, envLookup); err != nil {
					logger.Warn("configuration reload rejected", "error", err)
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(hup)
		close(done)
	}
}
