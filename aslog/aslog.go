// Package aslog is a thin structured-logging shim for demonstration and
// benchmark entry points only (cmd/aarith-bench). The numeric packages
// never log and never import this package; keeping the shim separate
// keeps that boundary visible.
package aslog

import (
	"log/slog"
	"os"
)

// New returns a text-handler logger writing to stderr, for use by
// cmd/aarith-bench only.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
