package link

import (
	"context"
	"io"
	"os"
	"sync"
)

// StdioSource serves a single link over the process's stdin and stdout.
type StdioSource struct {
	In  io.Reader
	Out io.Writer

	once sync.Once
}

var _ Source = (*StdioSource)(nil)

func (s *StdioSource) Next(ctx context.Context) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var first bool
	s.once.Do(func() { first = true })
	if !first {
		return nil, ErrExhausted
	}

	in, out := s.In, s.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return stdioLink{Reader: in, Writer: out}, nil
}

func (s *StdioSource) Close() error {
	return nil
}

func (s *StdioSource) String() string {
	return "stdio"
}

type stdioLink struct {
	io.Reader
	io.Writer
}

// Close leaves the process's streams open.
func (stdioLink) Close() error {
	return nil
}
