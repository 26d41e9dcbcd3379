package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// SendFunc matches journal.Send.
type SendFunc func(message string, priority journal.Priority, vars map[string]string) error

// JournalHandler is a slog.Handler writing records to journald. Attributes
// become journal fields with upper-cased, underscore-separated names.
type JournalHandler struct {
	level  slog.Leveler
	send   SendFunc
	fields map[string]string
	groups []string
}

// NewJournalHandler creates a handler emitting records at or above level.
func NewJournalHandler(level slog.Leveler, send SendFunc) *JournalHandler {
	return &JournalHandler{level: level, send: send}
}

func (h *JournalHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	vars := map[string]string{"SYSLOG_IDENTIFIER": "kmesg"}
	for k, v := range h.fields {
		vars[k] = v
	}
	prefix := fieldPrefix(h.groups)
	r.Attrs(func(a slog.Attr) bool {
		addField(vars, prefix, a)
		return true
	})
	return h.send(r.Message, Priority(r.Level), vars)
}

func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = make(map[string]string, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		h2.fields[k] = v
	}
	prefix := fieldPrefix(h.groups)
	for _, a := range attrs {
		addField(h2.fields, prefix, a)
	}
	return &h2
}

func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}

// Priority maps a slog level onto a syslog priority.
func Priority(l slog.Level) journal.Priority {
	switch {
	case l >= slog.LevelError:
		return journal.PriErr
	case l >= slog.LevelWarn:
		return journal.PriWarning
	case l >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

func fieldPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, "_") + "_"
}

func addField(vars map[string]string, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "_"
		}
		for _, ga := range a.Value.Group() {
			addField(vars, sub, ga)
		}
		return
	}
	vars[fieldName(prefix+a.Key)] = fmt.Sprint(a.Value.Any())
}

// fieldName converts key into a valid journal field name: upper-case
// letters, digits and underscores, not starting with an underscore.
func fieldName(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := strings.TrimLeft(b.String(), "_")
	if name == "" {
		return "FIELD"
	}
	return name
}
