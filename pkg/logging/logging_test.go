package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modoterra/kmesg/pkg/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("bogus"))
}

func TestNewStderrHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.Log{Level: "warn", Target: "stderr"}, &buf)

	logger.Debug("hidden")
	logger.Warn("shown", "bytes", 12)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "bytes=12")
}

type sent struct {
	msg  string
	pri  journal.Priority
	vars map[string]string
}

func TestJournalHandler(t *testing.T) {
	var got []sent
	h := NewJournalHandler(slog.LevelInfo, func(msg string, pri journal.Priority, vars map[string]string) error {
		got = append(got, sent{msg, pri, vars})
		return nil
	})
	logger := slog.New(h).With("op", "read").WithGroup("buf")

	logger.Debug("dropped")
	logger.Error("klogctl failed", "size", 4096, slog.Group("kernel", "action", "read-all"))

	require.Len(t, got, 1)
	assert.Equal(t, "klogctl failed", got[0].msg)
	assert.Equal(t, journal.PriErr, got[0].pri)
	assert.Equal(t, map[string]string{
		"SYSLOG_IDENTIFIER": "kmesg",
		"OP":                "read",
		"BUF_SIZE":          "4096",
		"BUF_KERNEL_ACTION": "read-all",
	}, got[0].vars)
}

func TestJournalHandlerEnabled(t *testing.T) {
	h := NewJournalHandler(slog.LevelWarn, nil)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}

func TestPriority(t *testing.T) {
	assert.Equal(t, journal.PriDebug, Priority(slog.LevelDebug))
	assert.Equal(t, journal.PriInfo, Priority(slog.LevelInfo))
	assert.Equal(t, journal.PriWarning, Priority(slog.LevelWarn))
	assert.Equal(t, journal.PriErr, Priority(slog.LevelError))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "CHUNK_SIZE", fieldName("chunk-size"))
	assert.Equal(t, "PATH", fieldName("_path"))
	assert.Equal(t, "FIELD", fieldName("__"))
}
