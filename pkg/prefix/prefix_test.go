package prefix

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strip(t *testing.T, in string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Strip(&out, []byte(in)))
	return out.String()
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single line", "<6>hello\n", "hello\n"},
		{"multiple lines", "<6>one\n<4>two\n<12>three\n", "one\ntwo\nthree\n"},
		{"empty payload", "<6>\n<6>x\n", "\nx\n"},
		{"trailing unterminated prefixed line", "<6>one\n<6>partial", "one\n"},
		{"trailing unprefixed text", "<6>one\nleftover", "one\n"},
		{"no prefix at all", "plain text\n", ""},
		{"gt inside payload kept", "<6>a > b\n", "a > b\n"},
		{"multi digit priority", "<130>facility\n", "facility\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strip(t, tt.in))
		})
	}
}

func TestStripConcatenatesPayloads(t *testing.T) {
	payloads := []string{"usb 1-1: new device\n", "\n", "eth0: link up\n", "EXT4-fs mounted\n"}
	var in, want strings.Builder
	for i, p := range payloads {
		in.WriteString("<" + string(rune('0'+i)) + ">" + p)
		want.WriteString(p)
	}
	in.WriteString("tail without newline")

	assert.Equal(t, want.String(), strip(t, in.String()))
}

func TestStripIdempotentWithoutGT(t *testing.T) {
	// Already-stripped text has no markers, so a second pass only keeps
	// what follows a literal '>'.
	once := strip(t, "<6>plain\n<6>words\n")
	assert.Empty(t, strip(t, once))

	once = strip(t, "<6>x > y\n")
	assert.Equal(t, " y\n", strip(t, once))
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("broken pipe")
	}
	w.n--
	return len(p), nil
}

func TestStripWriteError(t *testing.T) {
	err := Strip(&failWriter{n: 1}, []byte("<6>a\n<6>b\n<6>c\n"))
	assert.EqualError(t, err, "broken pipe")
}

func TestPriority(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"<6>hello", 6, true},
		{"<0>", 0, true},
		{"<134>x", 134, true},
		{"<>x", 0, false},
		{"6>x", 0, false},
		{"<a>x", 0, false},
		{"<6", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Priority([]byte(tt.in))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinPriority(t *testing.T) {
	p, ok := MinPriority([]byte("<6>a\n<3>b\nno prefix\n<12>c"))
	assert.True(t, ok)
	assert.Equal(t, 3, p)

	// 130 = facility 16, severity 2
	p, ok = MinPriority([]byte("<6>a\n<130>b\n"))
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	_, ok = MinPriority([]byte("nothing here\n"))
	assert.False(t, ok)
}
