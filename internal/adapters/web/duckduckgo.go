package web

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/lora-bbs/internal/ports"
	"golang.org/x/net/html"
)

const duckDuckGoURL = "https://duckduckgo.com"

// DuckDuckGo scrapes the HTML results page.
type DuckDuckGo struct {
	Client Client
}

var _ ports.Searcher = DuckDuckGo{}

func (d DuckDuckGo) Search(ctx context.Context, query string) ([]ports.SearchResult, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("kl", "es-es")

	header := http.Header{}
	header.Set("Accept-Language", "es-ES,es;q=0.9")

	body, err := d.Client.get(ctx, duckDuckGoURL, "/html/", values, header)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}

	results, err := parseDuckDuckGoResults(body, d.Client.base(duckDuckGoURL))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}

	return results, nil
}

func parseDuckDuckGoResults(body []byte, base string) ([]ports.SearchResult, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var results []ports.SearchResult
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && strings.Contains(attrValue(n, "class"), "result__a") {
			href := normalizeResultLink(attrValue(n, "href"), base)
			title := textContent(n)
			if href != "" && title != "" {
				results = append(results, ports.SearchResult{Title: title, URL: href})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results, nil
}

// normalizeResultLink resolves protocol-relative and site-relative links and
// unwraps the /l/?uddg= redirect.
func normalizeResultLink(raw string, base string) string {
	link := strings.TrimSpace(raw)
	if link == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(link, "//"):
		link = "https:" + link
	case strings.HasPrefix(link, "/"):
		link = strings.TrimRight(base, "/") + link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	if parsed.Path == "/l/" || parsed.Path == "/l" {
		if target := parsed.Query().Get("uddg"); target != "" {
			return target
		}
	}

	return link
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
