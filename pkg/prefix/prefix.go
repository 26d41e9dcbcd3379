// Package prefix removes the <N> priority markers the kernel puts in
// front of each log line.
package prefix

import (
	"bytes"
	"io"
	"strconv"
)

// Strip writes the payload of every prefixed line in buf to w.
//
// The payload of a line is everything after the next '>' up to and
// including the following '\n'. Scanning stops at the first point where
// no '>' or no terminating '\n' remains, so unprefixed trailing text is
// dropped.
func Strip(w io.Writer, buf []byte) error {
	for {
		gt := bytes.IndexByte(buf, '>')
		if gt < 0 {
			return nil
		}
		payload := buf[gt+1:]
		nl := bytes.IndexByte(payload, '\n')
		if nl < 0 {
			return nil
		}
		if _, err := w.Write(payload[:nl+1]); err != nil {
			return err
		}
		buf = payload[nl+1:]
	}
}

// Priority parses the <N> marker at the start of line.
func Priority(line []byte) (int, bool) {
	if len(line) < 3 || line[0] != '<' {
		return 0, false
	}
	end := bytes.IndexByte(line, '>')
	if end < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(string(line[1:end]))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MinPriority returns the most severe (lowest) priority among the lines
// of buf. Severity is the low three bits of the marker; the facility bits
// are ignored.
func MinPriority(buf []byte) (int, bool) {
	best, found := 0, false
	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		p, ok := Priority(line)
		if !ok {
			continue
		}
		p &= 7
		if !found || p < best {
			best, found = p, true
		}
	}
	return best, found
}
