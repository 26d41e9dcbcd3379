package dmesg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/modoterra/kmesg/pkg/config"
)

// DumpFile copies the file at path to stdout unmodified, ChunkSize bytes
// at a time.
func (r *Runner) DumpFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	size := r.ChunkSize
	if size <= 0 {
		size = config.DefaultChunkSize
	}
	buf := make([]byte, size)

	w := r.stdout()
	var total int64
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("dump %s: %w", path, err)
			}
			total += int64(n)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("dump %s: %w", path, rerr)
		}
	}

	r.Logger.Debug("dumped file", "path", path, "bytes", total)
	return nil
}
