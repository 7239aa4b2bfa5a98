package session

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// terminal serializes writes to the link.
type terminal struct {
	mu  sync.Mutex
	w   io.Writer
	log *zap.Logger
}

func newTerminal(w io.Writer, log *zap.Logger) *terminal {
	return &terminal{w: w, log: log}
}

func (t *terminal) Send(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.w, text); err != nil {
		t.log.Warn("write link", zap.Error(err))
		return
	}
	t.log.Debug("sent", zap.Int("bytes", len(text)))
}

func (t *terminal) Sendf(format string, args ...any) {
	t.Send(fmt.Sprintf(format, args...))
}
