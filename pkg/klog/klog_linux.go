//go:build linux

package klog

import (
	"golang.org/x/sys/unix"
)

// syscaller is the raw syslog(2) entry point, swapped out in tests.
type syscaller func(action Action, buf []byte, arg int) (int, error)

// Kernel talks to the running kernel through klogctl.
type Kernel struct {
	call syscaller
}

// New returns a Controller backed by the running kernel.
func New() *Kernel {
	return &Kernel{call: klogctl}
}

func klogctl(action Action, buf []byte, arg int) (int, error) {
	if buf != nil {
		return unix.Klogctl(int(action), buf)
	}
	// Actions without a buffer carry their argument in the length slot.
	n, _, errno := unix.Syscall(unix.SYS_SYSLOG, uintptr(action), 0, uintptr(arg))
	if errno != 0 {
		return 0, errno
	}
	return int(n), nil
}

func (k *Kernel) do(action Action, buf []byte, arg int) (int, error) {
	n, err := k.call(action, buf, arg)
	if err != nil {
		return 0, &Error{Action: action, Err: err}
	}
	return n, nil
}

func (k *Kernel) SizeBuffer() (int, error) {
	return k.do(ActionSizeBuffer, nil, 0)
}

func (k *Kernel) ReadAll(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	return k.do(ActionReadAll, buf, 0)
}

func (k *Kernel) Clear() error {
	_, err := k.do(ActionClear, nil, 0)
	return err
}

func (k *Kernel) ConsoleOff() error {
	_, err := k.do(ActionConsoleOff, nil, 0)
	return err
}

func (k *Kernel) ConsoleOn() error {
	_, err := k.do(ActionConsoleOn, nil, 0)
	return err
}

func (k *Kernel) ConsoleLevel(level int) error {
	_, err := k.do(ActionConsoleLevel, nil, level)
	return err
}
