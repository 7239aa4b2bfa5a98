package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrLinkClosed is returned once the transport has reached EOF and every
// buffered line has been consumed.
var ErrLinkClosed = errors.New("link closed")

const readChunkSize = 256

// readRetryBackoff is how long the pump waits after a transport read error.
var readRetryBackoff = time.Second

// LineReader turns the link's byte stream into logical lines. A pump
// goroutine forwards raw chunks; ReadLine waits on them and on its deadline.
type LineReader struct {
	chunks     chan []byte
	done       chan struct{}
	linkClosed chan struct{}
	closeOnce  sync.Once
	log        *zap.Logger

	buf []byte
}

func NewLineReader(r io.Reader, log *zap.Logger) *LineReader {
	if log == nil {
		log = zap.NewNop()
	}

	lr := &LineReader{
		chunks:     make(chan []byte, 16),
		done:       make(chan struct{}),
		linkClosed: make(chan struct{}),
		log:        log,
	}
	go lr.pump(r)

	return lr
}

func (lr *LineReader) pump(r io.Reader) {
	defer close(lr.linkClosed)

	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case lr.chunks <- chunk:
			case <-lr.done:
				return
			}
		}
		if err == nil {
			continue
		}
		if isLinkClosed(err) {
			lr.log.Debug("link reached end of stream", zap.Error(err))
			return
		}

		lr.log.Warn("read link", zap.Error(err), zap.Duration("retry_in", readRetryBackoff))
		select {
		case <-time.After(readRetryBackoff):
		case <-lr.done:
			return
		}
	}
}

// ReadLine returns the next non-empty line. With timeout > 0 it returns the
// partial accumulation (possibly empty) once the timeout elapses; with
// timeout == 0 it waits for a terminator, link closure or ctx.
func (lr *LineReader) ReadLine(ctx context.Context, timeout time.Duration) (string, error) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		if line, ok := lr.takeLine(); ok {
			return line, nil
		}

		select {
		case chunk := <-lr.chunks:
			lr.buf = append(lr.buf, chunk...)
		case <-deadline:
			return lr.flush(), nil
		case <-ctx.Done():
			return lr.flush(), ctx.Err()
		case <-lr.linkClosed:
			lr.drain()
			if line, ok := lr.takeLine(); ok {
				return line, nil
			}
			if rest := lr.flush(); rest != "" {
				return rest, nil
			}
			return "", ErrLinkClosed
		}
	}
}

// Close stops the pump. The caller still owns the underlying transport.
func (lr *LineReader) Close() {
	lr.closeOnce.Do(func() { close(lr.done) })
}

func (lr *LineReader) drain() {
	for {
		select {
		case chunk := <-lr.chunks:
			lr.buf = append(lr.buf, chunk...)
		default:
			return
		}
	}
}

// takeLine skips stray terminators and cuts the first complete line.
func (lr *LineReader) takeLine() (string, bool) {
	lr.buf = bytes.TrimLeft(lr.buf, "\r\n")

	i := bytes.IndexAny(lr.buf, "\r\n")
	if i < 0 {
		return "", false
	}

	line := decodeLine(lr.buf[:i])
	lr.buf = lr.buf[i+1:]
	return line, true
}

func (lr *LineReader) flush() string {
	rest := decodeLine(bytes.TrimLeft(lr.buf, "\r\n"))
	lr.buf = nil
	return rest
}

func decodeLine(raw []byte) string {
	decoded, _, err := transform.String(runes.ReplaceIllFormed(), string(raw))
	if err != nil {
		decoded = strings.ToValidUTF8(string(raw), "�")
	}
	return strings.TrimSpace(decoded)
}

func isLinkClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, os.ErrClosed)
}
