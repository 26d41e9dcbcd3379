//go:build !linux

package klog

// Kernel is a stub on platforms without klogctl.
type Kernel struct{}

// New returns a Controller whose every call fails with ErrUnsupported.
func New() *Kernel {
	return &Kernel{}
}

func (k *Kernel) SizeBuffer() (int, error)        { return 0, &Error{ActionSizeBuffer, ErrUnsupported} }
func (k *Kernel) ReadAll(buf []byte) (int, error) { return 0, &Error{ActionReadAll, ErrUnsupported} }
func (k *Kernel) Clear() error                    { return &Error{ActionClear, ErrUnsupported} }
func (k *Kernel) ConsoleOff() error               { return &Error{ActionConsoleOff, ErrUnsupported} }
func (k *Kernel) ConsoleOn() error                { return &Error{ActionConsoleOn, ErrUnsupported} }
func (k *Kernel) ConsoleLevel(level int) error    { return &Error{ActionConsoleLevel, ErrUnsupported} }
