package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/bnema/lora-bbs/internal/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupMocks struct {
	searcher     *mocks.MockSearcher
	encyclopedia *mocks.MockEncyclopedia
	weather      *mocks.MockWeatherProvider
	news         *mocks.MockNewsProvider
	rates        *mocks.MockExchangeRateProvider
}

func newTestLookupService(t *testing.T) (*LookupService, lookupMocks) {
	t.Helper()

	m := lookupMocks{
		searcher:     mocks.NewMockSearcher(t),
		encyclopedia: mocks.NewMockEncyclopedia(t),
		weather:      mocks.NewMockWeatherProvider(t),
		news:         mocks.NewMockNewsProvider(t),
		rates:        mocks.NewMockExchangeRateProvider(t),
	}

	return NewLookupService(m.searcher, m.encyclopedia, m.weather, m.news, m.rates), m
}

func TestLookupServiceSearchReturnsFirstResultWithCleanTitle(t *testing.T) {
	service, m := newTestLookupService(t)
	m.searcher.EXPECT().Search(mockAnyContext(), "meshtastic").Return([]ports.SearchResult{
		{Title: "  Meshtastic \n  docs ", URL: "https://meshtastic.org"},
		{Title: "otro", URL: "https://example.com"},
	}, nil)

	result, ok, err := service.Search(context.Background(), "meshtastic")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ports.SearchResult{Title: "Meshtastic docs", URL: "https://meshtastic.org"}, result)
}

func TestLookupServiceSearchTruncatesLongTitles(t *testing.T) {
	service, m := newTestLookupService(t)
	m.searcher.EXPECT().Search(mockAnyContext(), "x").Return([]ports.SearchResult{{Title: strings.Repeat("ñ", 250)}}, nil)

	result, ok, err := service.Search(context.Background(), "x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("ñ", 200)+"...", result.Title)
}

func TestLookupServiceSearchWithoutResults(t *testing.T) {
	service, m := newTestLookupService(t)
	m.searcher.EXPECT().Search(mockAnyContext(), "zzz").Return(nil, nil)

	_, ok, err := service.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupServiceSummaryTruncatesAt900Runes(t *testing.T) {
	service, m := newTestLookupService(t)
	m.encyclopedia.EXPECT().Lookup(mockAnyContext(), "LoRa", "es").Return(strings.Repeat("a", 1000), nil)

	summary, err := service.Summary(context.Background(), "LoRa")
	require.NoError(t, err)
	assert.Len(t, summary, 903)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestLookupServiceSummaryWrapsNotFound(t *testing.T) {
	service, m := newTestLookupService(t)
	m.encyclopedia.EXPECT().Lookup(mockAnyContext(), "Xyzzy", "es").Return("", domain.ErrArticleNotFound)

	_, err := service.Summary(context.Background(), "Xyzzy")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestLookupServiceNewsUsesRegionAndLanguage(t *testing.T) {
	service, m := newTestLookupService(t)
	m.news.EXPECT().Headlines(mockAnyContext(), "ES", "es-ES", 10).Return([]string{"Titular uno", "Titular dos"}, nil)

	report, err := service.News(context.Background(), "españa")
	require.NoError(t, err)
	assert.Equal(t, NewsReport{Country: "España", Region: "ES", Headlines: []string{"Titular uno", "Titular dos"}}, report)
}

func TestLookupServiceUnknownCountryMakesNoCalls(t *testing.T) {
	service, _ := newTestLookupService(t)

	_, err := service.News(context.Background(), "Atlántida")
	require.ErrorIs(t, err, domain.ErrUnknownCountry)

	_, err = service.Rates(context.Background(), "Atlántida")
	require.ErrorIs(t, err, domain.ErrUnknownCountry)
}

func TestLookupServiceRatesMarksMissingTargets(t *testing.T) {
	service, m := newTestLookupService(t)
	m.rates.EXPECT().Rates(mockAnyContext(), "MXN").Return(map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("0.0541"),
		"EUR": decimal.RequireFromString("0.05"),
		"GBP": decimal.Zero,
	}, nil)

	report, err := service.Rates(context.Background(), "méxico")
	require.NoError(t, err)
	assert.Equal(t, "México", report.Country)
	assert.Equal(t, "MXN", report.Base)
	require.Len(t, report.Lines, 4)

	available := map[string]bool{}
	for _, line := range report.Lines {
		available[line.Target.Code] = line.Available
	}
	assert.Equal(t, map[string]bool{"USD": true, "EUR": true, "JPY": false, "GBP": false}, available)
	assert.Equal(t, "0.0541", report.Lines[0].Rate.StringFixed(4))
}

func TestLookupServiceRatesFailures(t *testing.T) {
	service, m := newTestLookupService(t)
	m.rates.EXPECT().Rates(mockAnyContext(), "JPY").Return(nil, errors.New("status 503")).Once()
	m.rates.EXPECT().Rates(mockAnyContext(), "JPY").Return(map[string]decimal.Decimal{}, nil).Once()

	_, err := service.Rates(context.Background(), "Japón")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch rates for JPY: status 503")

	_, err = service.Rates(context.Background(), "Japón")
	require.ErrorIs(t, err, domain.ErrNoRates)
}

func TestLookupServiceWeatherTrimsReport(t *testing.T) {
	service, m := newTestLookupService(t)
	m.weather.EXPECT().Current(mockAnyContext(), "Madrid").Return("Madrid: ☀️ +21°C\n", nil)

	report, err := service.Weather(context.Background(), "Madrid")
	require.NoError(t, err)
	assert.Equal(t, "Madrid: ☀️ +21°C", report)
}
