package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duckDuckGoPage = `<!DOCTYPE html>
<html><body>
<div class="result results_links results_links_deep web-result">
  <h2 class="result__title">
    <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fes.wikipedia.org%2Fwiki%2FLoRa&amp;rut=abc">LoRa - <b>Wikipedia</b>, la enciclopedia
    libre</a>
  </h2>
  <a class="result__snippet" href="#">LoRa es una técnica de modulación</a>
</div>
<div class="result results_links">
  <h2 class="result__title"><a class="result__a" href="/about">Acerca de</a></h2>
</div>
</body></html>`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestDuckDuckGoSearchParsesResults(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/html/", r.URL.Path)
		assert.Equal(t, "lora mesh", r.URL.Query().Get("q"))
		assert.Equal(t, "es-es", r.URL.Query().Get("kl"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.Equal(t, "es-ES,es;q=0.9", r.Header.Get("Accept-Language"))
		_, _ = w.Write([]byte(duckDuckGoPage))
	})

	searcher := DuckDuckGo{Client: Client{BaseURL: server.URL, HTTPClient: server.Client()}}

	results, err := searcher.Search(context.Background(), "lora mesh")
	require.NoError(t, err)
	assert.Equal(t, []ports.SearchResult{
		{Title: "LoRa - Wikipedia, la enciclopedia libre", URL: "https://es.wikipedia.org/wiki/LoRa"},
		{Title: "Acerca de", URL: server.URL + "/about"},
	}, results)
}

func TestDuckDuckGoSearchWithoutResults(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="no-results">Sin resultados</div></body></html>`))
	})

	results, err := DuckDuckGo{Client: Client{BaseURL: server.URL}}.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDuckDuckGoSearchReportsStatus(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := DuckDuckGo{Client: Client{BaseURL: server.URL}}.Search(context.Background(), "lora")
	require.Error(t, err)
	assert.ErrorContains(t, err, "403")
}

func TestNormalizeResultLink(t *testing.T) {
	testCases := map[string]string{
		"//example.com/page":                             "https://example.com/page",
		"/l/?uddg=https%3A%2F%2Fexample.org%2Fa%3Fb%3D1": "https://example.org/a?b=1",
		"https://example.net/x":                          "https://example.net/x",
		"":                                               "",
	}

	for raw, want := range testCases {
		assert.Equal(t, want, normalizeResultLink(raw, "https://duckduckgo.com"), raw)
	}
}

func TestWikipediaLookupEscapesTitle(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest_v1/page/summary/Río_Bravo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Río Bravo","extract":"El río Bravo es un río de América del Norte."}`))
	})

	summary, err := Wikipedia{Client: Client{BaseURL: server.URL}}.Lookup(context.Background(), "Río Bravo", "es")
	require.NoError(t, err)
	assert.Equal(t, "El río Bravo es un río de América del Norte.", summary)
}

func TestWikipediaLookupNotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := Wikipedia{Client: Client{BaseURL: server.URL}}.Lookup(context.Background(), "Xyzzy", "es")
	require.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestWikipediaLookupInvalidJSON(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := Wikipedia{Client: Client{BaseURL: server.URL}}.Lookup(context.Background(), "LoRa", "es")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode wikipedia summary")
}

func TestWttrCurrentRequestsOneLineFormat(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/La Habana", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte("La Habana: ⛅️  +29°C\n"))
	})

	report, err := Wttr{Client: Client{BaseURL: server.URL}}.Current(context.Background(), "La Habana")
	require.NoError(t, err)
	assert.Equal(t, "La Habana: ⛅️  +29°C\n", report)
}

func TestGoogleNewsHeadlinesParsesFeed(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rss", r.URL.Path)
		assert.Equal(t, "es-419", r.URL.Query().Get("hl"))
		assert.Equal(t, "MX", r.URL.Query().Get("gl"))
		assert.Equal(t, "MX:es-419", r.URL.Query().Get("ceid"))
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Noticias</title>
<item><title>Primera noticia</title></item>
<item><title>Segunda noticia</title></item>
<item><title></title></item>
<item><title>Cuarta noticia</title></item>
</channel></rss>`))
	})

	headlines, err := GoogleNews{Client: Client{BaseURL: server.URL}}.Headlines(context.Background(), "MX", "es-419", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Primera noticia", "Segunda noticia", "Sin título"}, headlines)
}

func TestGoogleNewsHeadlinesRejectsBrokenFeed(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<rss><channel><item>`))
	})

	_, err := GoogleNews{Client: Client{BaseURL: server.URL}}.Headlines(context.Background(), "ES", "es-ES", 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse rss feed")
}

func TestExchangeRateAPIDecodesDecimals(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/MXN", r.URL.Path)
		_, _ = w.Write([]byte(`{"base":"MXN","rates":{"MXN":1,"USD":0.0541,"EUR":0.04987,"JPY":8.123456}}`))
	})

	rates, err := ExchangeRateAPI{Client: Client{BaseURL: server.URL}}.Rates(context.Background(), "MXN")
	require.NoError(t, err)
	assert.Equal(t, "0.0541", rates["USD"].StringFixed(4))
	assert.Equal(t, "0.0499", rates["EUR"].StringFixed(4))
	assert.Equal(t, "8.1235", rates["JPY"].StringFixed(4))
	_, ok := rates["GBP"]
	assert.False(t, ok)
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	})

	client := Client{BaseURL: server.URL, RequestTimeout: 20 * time.Millisecond}
	_, err := Wttr{Client: client}.Current(context.Background(), "Madrid")
	require.Error(t, err)
}
