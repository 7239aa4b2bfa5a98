package link

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
)

// TCPSource accepts one connection at a time on Address. It stands in for
// the radio when testing over a network bridge.
type TCPSource struct {
	listener net.Listener
}

var _ Source = (*TCPSource)(nil)

func ListenTCP(ctx context.Context, address string) (*TCPSource, error) {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	return &TCPSource{listener: listener}, nil
}

func (s *TCPSource) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *TCPSource) Next(ctx context.Context) (io.ReadWriteCloser, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = s.listener.Close()
	})
	defer stop()

	conn, err := s.listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, net.ErrClosed) {
			return nil, ErrExhausted
		}
		return nil, fmt.Errorf("accept connection: %w", err)
	}

	return conn, nil
}

func (s *TCPSource) Close() error {
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("close listener: %w", err)
	}
	return nil
}

func (s *TCPSource) String() string {
	return "tcp " + s.listener.Addr().String()
}
