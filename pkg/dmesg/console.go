package dmesg

import (
	"fmt"
	"strconv"
)

const (
	MinConsoleLevel = 1
	MaxConsoleLevel = 8
)

// ParseLevel parses a console level, which must be a decimal integer in
// [MinConsoleLevel, MaxConsoleLevel].
func ParseLevel(s string) (int, error) {
	level, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidLevel, s)
	}
	if level < MinConsoleLevel || level > MaxConsoleLevel {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return level, nil
}

// SetConsoleLevel validates arg and sets the console log level. An
// invalid level is reported on stdout and leaves the kernel untouched.
func (r *Runner) SetConsoleLevel(arg string) error {
	level, err := ParseLevel(arg)
	if err != nil {
		fmt.Fprintln(r.stdout(), MsgInvalidLevel)
		return err
	}
	return r.Ctl.ConsoleLevel(level)
}
