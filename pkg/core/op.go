package core

import "fmt"

// Op identifies one of the kernel log operations.
type Op string

const (
	OpRead         Op = "read"
	OpClear        Op = "clear"
	OpReadClear    Op = "read-clear"
	OpConsoleOff   Op = "console-off"
	OpConsoleOn    Op = "console-on"
	OpReadRaw      Op = "read-raw"
	OpDumpFile     Op = "dump-file"
	OpConsoleLevel Op = "console-level"
)

// Option pairs a command-line flag with the operation it selects.
type Option struct {
	Flag string
	Op   Op
}

// Options is the flag table. Flags are unique, so order only decides
// which entry is scanned first.
var Options = []Option{
	{"-C", OpClear},
	{"-c", OpReadClear},
	{"-D", OpConsoleOff},
	{"-E", OpConsoleOn},
	{"-r", OpReadRaw},
	{"-F", OpDumpFile},
	{"-n", OpConsoleLevel},
}

// Lookup returns the operation registered for flag.
func Lookup(flag string) (Op, bool) {
	for _, o := range Options {
		if o.Flag == flag {
			return o.Op, true
		}
	}
	return "", false
}

// TakesArgument reports whether the operation consumes the argument
// following its flag.
func (op Op) TakesArgument() bool {
	return op == OpDumpFile || op == OpConsoleLevel
}

// Flag returns the command-line flag for op, or an error for the default
// read, which has none.
func (op Op) Flag() (string, error) {
	for _, o := range Options {
		if o.Op == op {
			return o.Flag, nil
		}
	}
	return "", fmt.Errorf("operation %q has no flag", op)
}
