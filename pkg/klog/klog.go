// Package klog wraps the kernel log control interface, syslog(2).
package klog

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by every Controller call on platforms
// without klogctl.
var ErrUnsupported = errors.New("kernel log control is not supported on this platform")

// Action is a syslog(2) action code.
type Action int

const (
	ActionClose        Action = 0
	ActionOpen         Action = 1
	ActionRead         Action = 2
	ActionReadAll      Action = 3
	ActionReadClear    Action = 4
	ActionClear        Action = 5
	ActionConsoleOff   Action = 6
	ActionConsoleOn    Action = 7
	ActionConsoleLevel Action = 8
	ActionSizeUnread   Action = 9
	ActionSizeBuffer   Action = 10
)

var actionNames = map[Action]string{
	ActionClose:        "close",
	ActionOpen:         "open",
	ActionRead:         "read",
	ActionReadAll:      "read-all",
	ActionReadClear:    "read-clear",
	ActionClear:        "clear",
	ActionConsoleOff:   "console-off",
	ActionConsoleOn:    "console-on",
	ActionConsoleLevel: "console-level",
	ActionSizeUnread:   "size-unread",
	ActionSizeBuffer:   "size-buffer",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Controller issues kernel log control calls.
type Controller interface {
	// SizeBuffer returns the total size of the kernel log buffer.
	SizeBuffer() (int, error)

	// ReadAll copies up to len(buf) bytes of the buffer into buf without
	// consuming them.
	ReadAll(buf []byte) (int, error)

	Clear() error
	ConsoleOff() error
	ConsoleOn() error

	// ConsoleLevel sets the level below which messages reach the console.
	ConsoleLevel(level int) error
}

// Error records a failed kernel log call.
type Error struct {
	Action Action
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("klogctl %s: %v", e.Action, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
