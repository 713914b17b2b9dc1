//go:build !unix

// File: cmd/bytepump/reload_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"log/slog"

	"github.com/momentics/hioload-io/control"
)

// watchReload is a no-op where SIGHUP does not exist.
func watchReload(*control.ConfigStore, *slog.Logger) func() { return func() {} }
