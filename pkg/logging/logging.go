// Package logging builds the diagnostic logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"

	"github.com/modoterra/kmesg/pkg/config"
)

// ParseLevel maps a configuration level name onto a slog level.
// Unknown names fall back to warn.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a logger for cfg. Records go to journald when the target is
// "journal" and the journal socket is reachable, otherwise to stderr.
func New(cfg config.Log, stderr io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	if cfg.Target == "journal" && journal.Enabled() {
		return slog.New(NewJournalHandler(level, journal.Send))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
