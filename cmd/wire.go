package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/lora-bbs/internal/adapters/link"
	"github.com/bnema/lora-bbs/internal/adapters/llm"
	badgerrepo "github.com/bnema/lora-bbs/internal/adapters/repo/badger"
	sqliterepo "github.com/bnema/lora-bbs/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/lora-bbs/internal/adapters/repo/toml"
	"github.com/bnema/lora-bbs/internal/adapters/web"
	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/config"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/bnema/lora-bbs/internal/session"
	"go.uber.org/zap"
)

type app struct {
	store  *application.MessageStore
	engine *session.Engine
	llm    ports.LanguageModel
	close  func() error
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func wireApp(ctx context.Context, cfg config.Config, log *zap.Logger) (*app, error) {
	repo, closeRepo, err := openRepository(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("wire message repository: %w", err)
	}

	clock := ports.SystemClock{}
	store := application.OpenMessageStore(ctx, repo, clock, log.Named("store"))
	model := newLanguageModel(cfg.LLM)

	engine := session.NewEngine(session.Deps{
		Store:    store,
		Presence: application.NewPresence(),
		Lookups:  newLookupService(cfg.Web),
		Trivia:   application.NewTriviaService(model),
		LLM:      model,
		Clock:    clock,
		Log:      log.Named("session"),
		Timeouts: session.Timeouts{
			Name:        cfg.Timeouts.Name,
			Lookup:      cfg.Timeouts.Lookup,
			ModelSelect: cfg.Timeouts.ModelSelect,
			Prompt:      cfg.Timeouts.Prompt,
			Completion:  cfg.LLM.Timeout,
		},
		Credits: cfg.Credits,
	})

	return &app{store: store, engine: engine, llm: model, close: closeRepo}, nil
}

func openRepository(cfg config.StorageConfig) (ports.MessageRepository, func() error, error) {
	switch cfg.Backend {
	case config.StorageSQLite:
		repo, err := sqliterepo.Open(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case config.StorageBadger:
		repo, err := badgerrepo.Open(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		repo, err := tomlrepo.NewRepository(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}
}

func newLanguageModel(cfg config.LLMConfig) llm.Client {
	return llm.Client{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.APIKey,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Timeout,
		MaxTokens:      cfg.MaxTokens,
	}
}

func newLookupService(cfg config.WebConfig) *application.LookupService {
	client := web.Client{HTTPClient: http.DefaultClient, RequestTimeout: cfg.Timeout}

	return application.NewLookupService(
		web.DuckDuckGo{Client: client},
		web.Wikipedia{Client: client},
		web.Wttr{Client: client},
		web.GoogleNews{Client: client},
		web.ExchangeRateAPI{Client: client},
	)
}

// openSource builds the configured link. in and out back the stdio link.
func openSource(ctx context.Context, cfg config.LinkConfig, in io.Reader, out io.Writer) (link.Source, error) {
	switch cfg.Kind {
	case config.LinkTCP:
		source, err := link.ListenTCP(ctx, cfg.TCP.Address)
		if err != nil {
			return nil, err
		}
		return source, nil
	case config.LinkStdio:
		return &link.StdioSource{In: in, Out: out}, nil
	default:
		return &link.SerialSource{Port: cfg.Serial.Port, BaudRate: cfg.Serial.Baud}, nil
	}
}
