// Package logstream provides buffered text streams which prefix every
// line with a header when flushed.
package logstream

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Stream collects text and writes it to its destination on Flush, each
// line prefixed by the header.  A Stream is safe for concurrent use.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	header string
	dummy  bool
	color  *color.Color
	buf    bytes.Buffer
}

type Option func(*Stream)

// WithColor colors the header with attrs.
func WithColor(attrs ...color.Attribute) Option {
	return func(s *Stream) {
		s.color = color.New(attrs...)
	}
}

// New returns a stream writing to w with the given header.
func New(w io.Writer, header string, opts ...Option) *Stream {
	s := &Stream{w: w, header: header}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dummy returns a stream which discards everything.
func Dummy() *Stream {
	return &Stream{w: io.Discard, dummy: true}
}

// Location returns a stream whose header is "[loc]  ", the form used for
// per-location output.
func Location(w io.Writer, loc int, opts ...Option) *Stream {
	return New(w, fmt.Sprintf("[%d]  ", loc), opts...)
}

func (s *Stream) Write(d []byte) (int, error) {
	if s.dummy {
		return len(d), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(d)
}

func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Stream) Printf(format string, args ...any) {
	fmt.Fprintf(s, format, args...)
}

// Flush writes the buffered text, one header prefixed line per line of
// input, and empties the buffer.  A final line without a newline gets
// one.
func (s *Stream) Flush() error {
	if s.dummy {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf.Len() == 0 {
		return nil
	}
	header := s.header
	if s.color != nil {
		header = s.color.Sprint(header)
	}
	out := &strings.Builder{}
	for line := range strings.Lines(s.buf.String()) {
		out.WriteString(header)
		out.WriteString(strings.TrimSuffix(line, "\n"))
		out.WriteByte('\n')
	}
	s.buf.Reset()
	_, err := io.WriteString(s.w, out.String())
	return err
}

// Close flushes s.
func (s *Stream) Close() error {
	return s.Flush()
}
