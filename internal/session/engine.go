package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"go.uber.org/zap"
)

// ErrEngineBusy is returned by Serve when another link already owns the engine.
var ErrEngineBusy = errors.New("engine already serving a link")

const (
	defaultNameTimeout        = 30 * time.Second
	defaultLookupTimeout      = 30 * time.Second
	defaultModelSelectTimeout = 40 * time.Second
	defaultPromptTimeout      = 120 * time.Second
	defaultCompletionTimeout  = 180 * time.Second
)

// Timeouts bound every wait on the user and every long collaborator call.
type Timeouts struct {
	Name        time.Duration
	Lookup      time.Duration
	ModelSelect time.Duration
	Prompt      time.Duration
	Completion  time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Name:        defaultNameTimeout,
		Lookup:      defaultLookupTimeout,
		ModelSelect: defaultModelSelectTimeout,
		Prompt:      defaultPromptTimeout,
		Completion:  defaultCompletionTimeout,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	defaults := DefaultTimeouts()
	if t.Name <= 0 {
		t.Name = defaults.Name
	}
	if t.Lookup <= 0 {
		t.Lookup = defaults.Lookup
	}
	if t.ModelSelect <= 0 {
		t.ModelSelect = defaults.ModelSelect
	}
	if t.Prompt <= 0 {
		t.Prompt = defaults.Prompt
	}
	if t.Completion <= 0 {
		t.Completion = defaults.Completion
	}
	return t
}

type Deps struct {
	Store    *application.MessageStore
	Presence *application.Presence
	Lookups  *application.LookupService
	Trivia   *application.TriviaService
	LLM      ports.LanguageModel
	Clock    ports.Clock
	Log      *zap.Logger
	Timeouts Timeouts
	Credits  string
}

// Engine drives one BBS session at a time over a text link.
type Engine struct {
	deps  Deps
	mu    sync.Mutex
	state atomic.Int32
}

func NewEngine(deps Deps) *Engine {
	if deps.Presence == nil {
		deps.Presence = application.NewPresence()
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Credits == "" {
		deps.Credits = DefaultCredits
	}
	if deps.Trivia == nil && deps.LLM != nil {
		deps.Trivia = application.NewTriviaService(deps.LLM)
	}
	deps.Timeouts = deps.Timeouts.withDefaults()

	return &Engine{deps: deps}
}

func (e *Engine) State() domain.State {
	return domain.State(e.state.Load())
}

func (e *Engine) setState(state domain.State) {
	e.state.Store(int32(state))
}

// Serve runs the session loop on link until the link closes (nil) or ctx is
// cancelled (ctx.Err()). A disconnect returns the engine to idle and keeps
// serving the same link.
func (e *Engine) Serve(ctx context.Context, link io.ReadWriter) error {
	if !e.mu.TryLock() {
		return ErrEngineBusy
	}
	defer e.mu.Unlock()

	reader := NewLineReader(link, e.deps.Log)
	defer reader.Close()

	s := &session{
		Deps:   e.deps,
		engine: e,
		ctx:    ctx,
		reader: reader,
		term:   newTerminal(link, e.deps.Log),
	}

	for {
		e.setState(domain.StateIdle)
		line, ok := s.read(0)
		if !ok {
			return s.exitErr()
		}
		if line == "" {
			continue
		}

		if !s.login() {
			if s.err != nil {
				return s.exitErr()
			}
			continue
		}

		result := s.menu()
		s.logout()
		if result == outcomeClosed {
			return s.exitErr()
		}
	}
}

// session is the per-login state. Handlers are its methods.
type session struct {
	Deps
	engine *Engine
	ctx    context.Context
	reader *LineReader
	term   *terminal

	user  domain.Session
	model string
	err   error
}

// read waits for one line. ok is false once the link or ctx is gone.
func (s *session) read(timeout time.Duration) (string, bool) {
	line, err := s.reader.ReadLine(s.ctx, timeout)
	if err != nil {
		s.err = err
		return "", false
	}
	return line, true
}

func (s *session) exitErr() error {
	if errors.Is(s.err, ErrLinkClosed) {
		return nil
	}
	return s.err
}

func (s *session) login() bool {
	s.engine.setState(domain.StateNaming)
	s.term.Send("\n>>> Conexión aceptada.\n")
	s.term.Send("Nombre de usuario:\n> ")

	input, ok := s.read(s.Timeouts.Name)
	if !ok {
		return false
	}
	if domain.IsDisconnect(input) {
		s.term.Send("Desconectando sesión...\n")
		return false
	}

	s.user = domain.Session{Name: domain.SessionName(input), Active: true}
	s.Presence.Add(s.user.Name)
	s.Log.Info("session started", zap.String("user", s.user.Name))
	s.term.Sendf("Bienvenido a LoRa BBS Gateway v0.1, %s!\n", s.user.Name)

	if pending := s.Store.DrainMailbox(s.ctx, s.user.Name); len(pending) > 0 {
		s.term.Send("Tienes mensajes privados pendientes:\n---\n")
		for _, entry := range pending {
			s.term.Sendf("%s: %s\n", entry.Sender, entry.Entry)
		}
		s.term.Send("---\n(Mensajes leídos y eliminados.)\n")
	}

	s.engine.setState(domain.StateMenuActive)
	s.term.Send(MenuText)
	return true
}

func (s *session) logout() {
	s.Presence.Remove(s.user.Name)
	s.Log.Info("session ended", zap.String("user", s.user.Name))
	s.user = domain.Session{}
	s.model = ""
}

// menu dispatches main-menu commands until disconnect or link loss.
func (s *session) menu() outcome {
	for {
		input, ok := s.read(0)
		if !ok {
			return outcomeClosed
		}
		if input == "" {
			continue
		}

		cmd := ParseCommand(input)
		s.Log.Debug("dispatch command", zap.Stringer("command", cmd), zap.String("user", s.user.Name))

		if cmd == CommandDisconnect {
			s.term.Send("Desconectando sesión...\n")
			return outcomeDisconnect
		}

		handle, found := handlers[cmd]
		if !found {
			s.term.Send("Comando desconocido.\n")
			s.term.Send(MenuText)
			continue
		}

		if cmd.SubMode() {
			s.engine.setState(domain.StateSubMode)
		}
		result := handle(s)
		s.engine.setState(domain.StateMenuActive)

		switch result {
		case outcomeClosed:
			return outcomeClosed
		case outcomeDisconnect:
			s.term.Send("Desconectando sesión...\n")
			return outcomeDisconnect
		}
		s.term.Send(MenuText)
	}
}

// collaboratorContext bounds one collaborator call.
func (s *session) collaboratorContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.ctx, timeout)
}
