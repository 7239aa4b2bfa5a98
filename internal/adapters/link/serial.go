package link

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.bug.st/serial"
)

const DefaultBaudRate = 115200

// SerialSource opens the radio's serial port. Each Next reopens the port so
// an unplugged device is picked up again once it returns.
type SerialSource struct {
	Port     string
	BaudRate int
}

var _ Source = (*SerialSource)(nil)

func (s *SerialSource) Next(ctx context.Context) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baud := s.BaudRate
	if baud <= 0 {
		baud = DefaultBaudRate
	}

	port, err := serial.Open(s.Port, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", s.Port, err)
	}

	return &serialLink{port: port}, nil
}

func (s *SerialSource) Close() error {
	return nil
}

func (s *SerialSource) String() string {
	return fmt.Sprintf("serial %s @ %d", s.Port, s.BaudRate)
}

// serialLink reports a closed port as io.EOF so the session ends cleanly.
type serialLink struct {
	port io.ReadWriteCloser
}

func (l *serialLink) Read(p []byte) (int, error) {
	n, err := l.port.Read(p)
	return n, mapPortError(err)
}

func (l *serialLink) Write(p []byte) (int, error) {
	n, err := l.port.Write(p)
	return n, mapPortError(err)
}

func (l *serialLink) Close() error {
	return l.port.Close()
}

func mapPortError(err error) error {
	var portErr *serial.PortError
	if errors.As(err, &portErr) && portErr.Code() == serial.PortClosed {
		return io.EOF
	}
	return err
}
