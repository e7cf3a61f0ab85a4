// Package log provides the leveled logger used by cmd/hgstat. The
// algorithmic packages (hgraph, hgpath, centrality, connect, metrics)
// never import it: library code reports failure through errors and
// panics, not log lines.
package log

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text-handler logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Default returns a logger writing to stderr at Info level.
func Default() *slog.Logger {
	return New(os.Stderr, slog.LevelInfo)
}
