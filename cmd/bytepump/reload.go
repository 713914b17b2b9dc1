// File: cmd/bytepump/reload.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Channel settings reloaded from the environment on request.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/momentics/hioload-io/control"
)

// Environment keys read on reload.
const (
	envCapacity  = "BYTEPUMP_CAPACITY"
	envAutoFlush = "BYTEPUMP_AUTOFLUSH"
)

// reloadFromEnv applies the channel settings found through lookup to store.
// Pool geometry is left alone: chunks already handed out keep their size.
func reloadFromEnv(store *control.ConfigStore, lookup func(string) (string, bool)) error {
	var edits []func(*control.Config)
	if v, ok := lookup(envCapacity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envCapacity, err)
		}
		edits = append(edits, func(cfg *control.Config) { cfg.ChannelCapacity = n })
	}
	if v, ok := lookup(envAutoFlush); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envAutoFlush, err)
		}
		edits = append(edits, func(cfg *control.Config) { cfg.AutoFlush = b })
	}
	if len(edits) == 0 {
		return nil
	}
	return store.Update(func(cfg *control.Config) {
		for _, edit := range edits {
			edit(cfg)
		}
	})
}

func envLookup(key string) (string, bool) { return os.LookupEnv(key) }
