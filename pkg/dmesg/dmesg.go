// Package dmesg implements the kernel log operations selected from the
// command line: reading, clearing, console control and file dumping.
package dmesg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modoterra/kmesg/pkg/config"
	"github.com/modoterra/kmesg/pkg/core"
	"github.com/modoterra/kmesg/pkg/klog"
)

const (
	MsgEmpty         = "The kernel log buffer is currently empty"
	MsgInvalidOption = "Invalid option specified"
	MsgInvalidLevel  = "Invalid level specified. Level must be in the range: [1, 8]"
)

// ErrInvalidLevel is returned when a console level is outside [1, 8].
var ErrInvalidLevel = errors.New("invalid console level")

// Runner executes kernel log operations against a Controller.
type Runner struct {
	Program   string
	Ctl       klog.Controller
	Stdout    io.Writer
	Stderr    io.Writer
	ChunkSize int
	Logger    *slog.Logger

	out *bufio.Writer
}

// New creates a runner writing to the process's standard streams.
func New(program string, ctl klog.Controller, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		Program:   program,
		Ctl:       ctl,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		ChunkSize: config.DefaultChunkSize,
		Logger:    logger,
	}
}

// Run dispatches args, the process arguments after the program name.
// Standard output is flushed before Run returns, on every path.
func (r *Runner) Run(args []string) (err error) {
	r.out = bufio.NewWriter(r.Stdout)
	defer func() {
		if ferr := r.out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write stdout: %w", ferr)
		}
		r.out = nil
	}()

	if len(args) > 2 {
		fmt.Fprintf(r.out, "USAGE: %s <option> <argument to the option>\n", r.Program)
		return nil
	}
	if len(args) == 0 {
		return r.Read(false)
	}

	op, ok := core.Lookup(args[0])
	if !ok {
		r.Logger.Debug("unknown option", "flag", args[0])
		fmt.Fprintln(r.out, MsgInvalidOption)
		return nil
	}

	var arg string
	if len(args) > 1 {
		if op.TakesArgument() {
			arg = args[1]
		} else {
			r.Logger.Debug("ignoring extra argument", "op", op, "arg", args[1])
		}
	}
	flag, _ := op.Flag()
	r.Logger.Debug("dispatch", "flag", flag, "op", op, "arg", arg)
	return r.Do(op, arg)
}

// Do runs a single operation. arg is only used by operations that take
// an argument.
func (r *Runner) Do(op core.Op, arg string) error {
	switch op {
	case core.OpRead:
		return r.Read(false)
	case core.OpReadRaw:
		return r.Read(true)
	case core.OpReadClear:
		return r.ReadClear()
	case core.OpClear:
		return r.Ctl.Clear()
	case core.OpConsoleOff:
		return r.Ctl.ConsoleOff()
	case core.OpConsoleOn:
		return r.Ctl.ConsoleOn()
	case core.OpConsoleLevel:
		return r.SetConsoleLevel(arg)
	case core.OpDumpFile:
		return r.DumpFile(arg)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// stdout returns the buffered writer during Run and the raw writer
// otherwise.
func (r *Runner) stdout() io.Writer {
	if r.out != nil {
		return r.out
	}
	return r.Stdout
}
