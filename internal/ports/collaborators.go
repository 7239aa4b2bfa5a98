package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

type SearchResult struct {
	Title string
	URL   string
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type Encyclopedia interface {
	Lookup(ctx context.Context, term string, lang string) (string, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, city string) (string, error)
}

type NewsProvider interface {
	Headlines(ctx context.Context, region string, lang string, limit int) ([]string, error)
}

// ExchangeRateProvider returns units of each currency per one unit of base.
type ExchangeRateProvider interface {
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

type LanguageModel interface {
	ListModels(ctx context.Context) ([]string, error)
	Complete(ctx context.Context, model string, prompt string) (string, error)
}
