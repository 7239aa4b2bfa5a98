package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/samber/lo"
)

const (
	searchTitleLimit   = 200
	summaryLimit       = 900
	headlineLimit      = 10
	EncyclopediaLocale = "es"
)

// LookupService fronts the web collaborators and applies the BBS's own
// limits and country tables before any network call.
type LookupService struct {
	searcher     ports.Searcher
	encyclopedia ports.Encyclopedia
	weather      ports.WeatherProvider
	news         ports.NewsProvider
	rates        ports.ExchangeRateProvider
}

func NewLookupService(searcher ports.Searcher, encyclopedia ports.Encyclopedia, weather ports.WeatherProvider, news ports.NewsProvider, rates ports.ExchangeRateProvider) *LookupService {
	return &LookupService{
		searcher:     searcher,
		encyclopedia: encyclopedia,
		weather:      weather,
		news:         news,
		rates:        rates,
	}
}

// Search returns the first result. ok is false when there were no results.
func (s *LookupService) Search(ctx context.Context, query string) (ports.SearchResult, bool, error) {
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return ports.SearchResult{}, false, fmt.Errorf("search %q: %w", query, err)
	}
	if len(results) == 0 {
		return ports.SearchResult{}, false, nil
	}

	first := results[0]
	first.Title = truncate(strings.Join(strings.Fields(first.Title), " "), searchTitleLimit)
	return first, true, nil
}

// Summary returns the encyclopedia extract for term. An empty string means
// the article exists but has no summary.
func (s *LookupService) Summary(ctx context.Context, term string) (string, error) {
	summary, err := s.encyclopedia.Lookup(ctx, term, EncyclopediaLocale)
	if err != nil {
		return "", fmt.Errorf("look up %q: %w", term, err)
	}

	return truncate(strings.TrimSpace(summary), summaryLimit), nil
}

func (s *LookupService) Weather(ctx context.Context, city string) (string, error) {
	report, err := s.weather.Current(ctx, city)
	if err != nil {
		return "", fmt.Errorf("fetch weather for %q: %w", city, err)
	}

	return strings.TrimSpace(report), nil
}

func (s *LookupService) News(ctx context.Context, country string) (NewsReport, error) {
	region, ok := domain.NewsRegionFor(country)
	if !ok {
		return NewsReport{}, fmt.Errorf("news for %q: %w", country, domain.ErrUnknownCountry)
	}

	headlines, err := s.news.Headlines(ctx, region, domain.NewsLanguage(region), headlineLimit)
	if err != nil {
		return NewsReport{}, fmt.Errorf("fetch headlines for %s: %w", region, err)
	}
	if len(headlines) > headlineLimit {
		headlines = headlines[:headlineLimit]
	}

	return NewsReport{
		Country:   domain.DisplayCountry(country),
		Region:    region,
		Headlines: headlines,
	}, nil
}

// Rates converts one unit of the country's currency into every fiat target.
func (s *LookupService) Rates(ctx context.Context, country string) (RateReport, error) {
	base, ok := domain.CurrencyFor(country)
	if !ok {
		return RateReport{}, fmt.Errorf("rates for %q: %w", country, domain.ErrUnknownCountry)
	}

	rates, err := s.rates.Rates(ctx, base)
	if err != nil {
		return RateReport{}, fmt.Errorf("fetch rates for %s: %w", base, err)
	}
	if len(rates) == 0 {
		return RateReport{}, fmt.Errorf("fetch rates for %s: %w", base, domain.ErrNoRates)
	}

	lines := lo.Map(domain.FiatTargets, func(target domain.FiatTarget, _ int) RateLine {
		rate, found := rates[target.Code]
		return RateLine{Target: target, Rate: rate, Available: found && rate.IsPositive()}
	})

	return RateReport{
		Country: domain.DisplayCountry(country),
		Base:    base,
		Lines:   lines,
	}, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
