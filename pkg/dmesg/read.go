package dmesg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modoterra/kmesg/pkg/prefix"
)

// Read prints the kernel log buffer, verbatim when raw is set and with
// priority prefixes stripped otherwise.
//
// The buffer is sized from a query made just before the read; messages
// logged in between may be truncated.
func (r *Runner) Read(raw bool) error {
	size, err := r.Ctl.SizeBuffer()
	if err != nil {
		return err
	}

	buf := make([]byte, size)
	n, err := r.Ctl.ReadAll(buf)
	if err != nil {
		return err
	}
	buf = buf[:n]

	if n == 0 {
		fmt.Fprintln(r.Stderr, MsgEmpty)
		return nil
	}

	if r.Logger.Enabled(context.Background(), slog.LevelDebug) {
		if p, ok := prefix.MinPriority(buf); ok {
			r.Logger.Debug("read kernel log", "size", size, "bytes", n, "min_priority", p)
		}
	}

	if raw {
		_, err = r.stdout().Write(buf)
	} else {
		err = prefix.Strip(r.stdout(), buf)
	}
	if err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

// ReadClear prints the stripped buffer, then clears it.
func (r *Runner) ReadClear() error {
	if err := r.Read(false); err != nil {
		return err
	}
	return r.Ctl.Clear()
}
