package link

import (
	"context"
	"errors"
	"io"
)

// ErrExhausted is returned by Next when the source can never produce another link.
var ErrExhausted = errors.New("link source exhausted")

// Source hands out one text link at a time. The caller closes every link it
// receives before asking for the next.
type Source interface {
	Next(ctx context.Context) (io.ReadWriteCloser, error)
	Close() error
	String() string
}
